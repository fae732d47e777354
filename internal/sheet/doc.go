// Package sheet converts between spreadsheets and participant rosters.
//
// Parse reads the first sheet of an .xlsx, .xls or CSV file. The header row
// is matched against the column names below; missing columns read as
// empty, and rows without a name or an email are dropped.
//
//	Employee_Name | Employee_EmailID | Secret_Child_Name | Secret_Child_EmailID
//
// Export writes an assignment set as a single "Assignments" sheet with the
// same four columns, so an exported file can be parsed back into a roster
// whose secret-child fields record the draw.
package sheet
