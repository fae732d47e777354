package harness

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

const scenarioSchema = `
#Participant: {
	name:                string & !=""
	email:               string & !=""
	secret_child_name?:  string
	secret_child_email?: string
}

#Scenario: {
	name:          string & =~"^[a-z0-9_]+$"
	description:   string & !=""
	roster:        [...#Participant]
	seed?:         int & >=0
	picks?:        [...int & >=0]
	max_attempts?: int & >0
	set_id?:       string & !=""
	expect: {
		error?:     "INSUFFICIENT_PARTICIPANTS" | "GENERATION_FAILED"
		size?:      int & >=0
		attempts?:  int & >0
		receivers?: [...string]
	}
}
`

// validateRaw checks a decoded YAML document against #Scenario.
func validateRaw(raw any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(scenarioSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile scenario schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Scenario"))

	v := def.Unify(ctx.Encode(raw))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s", cueerrors.Details(err, nil))
	}
	return nil
}
