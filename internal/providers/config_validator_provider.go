package providers

import (
	"fmt"

	"github.com/gookit/validate"

	"wsd/internal/structures"
)

// CnfValidator checks the unmarshalled config before anything is wired to it.
type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.One())
	}
	return nil
}
