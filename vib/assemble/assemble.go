// Package assemble combines correlation-derived spectra into named
// composite observables.
//
// Combination rules are weighted sums over the real or imaginary parts of
// input spectra, declared per observable. Weights are explicit
// configuration: the sign and scaling conventions of chirality-difference
// observables are field-dependent and must not be inferred. No implicit
// resampling happens; all referenced spectra must already share a
// frequency grid, which is guaranteed when they derive from correlation
// functions of equal maximum lag and time step.
package assemble

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-vibspec/vib/spectral"
)

// Errors returned by Assemble.
var (
	ErrUnknownLabel = errors.New("assemble: unknown spectrum label")
	ErrAxisMismatch = errors.New("assemble: frequency axis mismatch")
	ErrEmptyRule    = errors.New("assemble: empty combination rule")
)

// Part selects which component of a complex spectrum a term reads.
type Part int

const (
	// Real reads the symmetric (achiral) part.
	Real Part = iota

	// Imag reads the antisymmetric (chirality-carrying) part.
	Imag
)

// String returns the part name.
func (p Part) String() string {
	switch p {
	case Real:
		return "re"
	case Imag:
		return "im"
	default:
		return fmt.Sprintf("part(%d)", int(p))
	}
}

// Term is one weighted contribution to a composite observable.
type Term struct {
	Label  string
	Weight float64
	Part   Part
}

// Rule is the ordered weighted sum defining one observable.
type Rule []Term

// Rules maps observable labels to their combination rules.
type Rules map[string]Rule

// Composite is a real-valued assembled observable.
type Composite struct {
	Freq   []float64
	Values []float64
	Unit   spectral.FrequencyUnit
}

// AbsorptionRule returns the standard absorption rule: the real part of
// the named (electric-electric) spectrum with unit weight.
func AbsorptionRule(label string) Rule {
	return Rule{{Label: label, Weight: 1, Part: Real}}
}

// ChiralityRule returns a chirality-difference rule: weight times the
// imaginary part of the named (electric-magnetic) cross spectrum. The
// conventional VCD weight is 4, but the choice stays with the caller.
func ChiralityRule(label string, weight float64) Rule {
	return Rule{{Label: label, Weight: weight, Part: Imag}}
}

// Assemble evaluates the combination rules over the given spectra.
//
// Every label referenced by a rule must exist and all spectra referenced
// by one rule must share a bit-identical frequency axis and unit. The
// result is deterministic: terms are summed in rule order, so re-running
// with identical inputs yields bit-identical composites.
func Assemble(spectra map[string]*spectral.Spectrum, rules Rules) (map[string]Composite, error) {
	labels := make([]string, 0, len(rules))
	for label := range rules {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	out := make(map[string]Composite, len(rules))

	for _, label := range labels {
		composite, err := evalRule(spectra, label, rules[label])
		if err != nil {
			return nil, err
		}

		out[label] = composite
	}

	return out, nil
}

func evalRule(spectra map[string]*spectral.Spectrum, label string, rule Rule) (Composite, error) {
	if len(rule) == 0 {
		return Composite{}, fmt.Errorf("assemble: observable %q: %w", label, ErrEmptyRule)
	}

	var ref *spectral.Spectrum

	for _, term := range rule {
		s, ok := spectra[term.Label]
		if !ok {
			return Composite{}, fmt.Errorf("assemble: observable %q references %q: %w",
				label, term.Label, ErrUnknownLabel)
		}

		if ref == nil {
			ref = s
			continue
		}

		if err := sameAxis(ref, s); err != nil {
			return Composite{}, fmt.Errorf("assemble: observable %q: %q vs %q: %w",
				label, rule[0].Label, term.Label, err)
		}
	}

	composite := Composite{
		Freq:   append([]float64(nil), ref.Freq...),
		Values: make([]float64, len(ref.Freq)),
		Unit:   ref.Unit,
	}

	for _, term := range rule {
		s := spectra[term.Label]
		for k, v := range s.Values {
			switch term.Part {
			case Imag:
				composite.Values[k] += term.Weight * imag(v)
			default:
				composite.Values[k] += term.Weight * real(v)
			}
		}
	}

	return composite, nil
}

func sameAxis(a, b *spectral.Spectrum) error {
	if a.Unit != b.Unit {
		return fmt.Errorf("units %v vs %v: %w", a.Unit, b.Unit, ErrAxisMismatch)
	}

	if len(a.Freq) != len(b.Freq) {
		return fmt.Errorf("%d vs %d bins: %w", len(a.Freq), len(b.Freq), ErrAxisMismatch)
	}

	for k := range a.Freq {
		if a.Freq[k] != b.Freq[k] {
			return fmt.Errorf("bin %d: %v vs %v: %w", k, a.Freq[k], b.Freq[k], ErrAxisMismatch)
		}
	}

	return nil
}
