package domain

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance used by all constructors.
var validate = validator.New()
