package guard_test

import (
	"errors"
	"sync"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("stop not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("partner not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a small value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	var errLegNotConstructed = errors.New("Leg must be created via NewLeg")

	type Leg struct {
		distanceKm float64
		guard      guard.ConstructorGuard
	}

	newLeg := func(distanceKm float64) (Leg, error) {
		if distanceKm < 0 {
			return Leg{}, errors.New("distance cannot be negative")
		}
		return Leg{distanceKm: distanceKm, guard: guard.NewConstructorGuard()}, nil
	}

	validateLeg := func(l Leg) error {
		return l.guard.Validate(errLegNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		leg, err := newLeg(12.5)

		require.NoError(t, err)
		require.NoError(t, validateLeg(leg))
		assert.InDelta(t, 12.5, leg.distanceKm, 1e-9)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var leg Leg

		assert.Equal(t, errLegNotConstructed, validateLeg(leg))
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newLeg(-1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(validationError))
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var g guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
