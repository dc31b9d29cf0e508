// Package validation validates request payloads against CUE schemas and
// reports failures as input validation errors.
//
// A Validator compiles its schema once and unifies every payload with it.
// Payloads that do not satisfy the schema produce an
// *errors.InputValidationError whose field errors are grouped by CUE path, so
// the error dispatcher answers them with a 400 and a per-field body.
//
// # Quick Start
//
//	v, err := validation.NewValidator(`
//	    #Signup: {
//	        email: string & =~"^[^@]+@[^@]+$"
//	        age:   int & >=18
//	    }
//	`, validation.WithDefinition("#Signup"))
//	if err != nil {
//	    return err
//	}
//
//	var req SignupRequest
//	if err := v.DecodeJSON(ctx, body, &req); err != nil {
//	    return err // InputValidationError on bad input
//	}
//
// # Errors
//
// Failures caused by the payload are *errors.InputValidationError. Failures
// caused by the schema or the decode target are *errors.BaseError with
// CodeInvalidConfig or CodeSchemaFailed, which the dispatcher treats as
// internal errors.
package validation
