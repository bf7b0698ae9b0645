package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainSentinelsWrapErrDomain(t *testing.T) {
	assert.ErrorIs(t, ErrDomainRange, ErrDomain)
	assert.ErrorIs(t, ErrDomainOrder, ErrDomain)
	assert.ErrorIs(t, ErrDomainSpan, ErrDomain)
}

func TestErrDomainClassifiesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: offset 5", ErrDomainRange)
	assert.ErrorIs(t, wrapped, ErrDomainRange)
	assert.ErrorIs(t, wrapped, ErrDomain)
	assert.NotErrorIs(t, wrapped, ErrDomainOrder)
}
