package filters

import (
	"fmt"
	"strconv"
	"strings"

	"traffic-analyzer/internal/models"
	"traffic-analyzer/internal/shared/validators"
)

// FilterArgs holds the raw filter flags of one run. Empty strings and nil bounds
// mean the flag was not given.
type FilterArgs struct {
	Method string `validate:"omitempty,oneof=GET POST PUT DELETE PATCH HEAD OPTIONS"`
	Status string // CODE or LOW-HIGH
	Start  *int64 `validate:"omitempty,gt=0"`
	End    *int64 `validate:"omitempty,gt=0"`
}

type statusRange struct {
	Low  int `validate:"min=100,max=599"`
	High int `validate:"min=100,max=599,gtefield=Low"`
}

var validate = validators.New()

// NewFilterSpec validates args and converts them into a FilterSpec. Every
// rejection is an invalid_argument ServiceError naming the offending flag.
func NewFilterSpec(args FilterArgs) (*models.FilterSpec, error) {
	if err := validate.Struct(&args); err != nil {
		return nil, errInvalidFilterArgs(
			fmt.Sprintf("invalid filter: %s", strings.Join(validators.Describe(err), ", ")), err)
	}

	spec := &models.FilterSpec{}

	if args.Method != "" {
		method := models.Method(args.Method)
		spec.Method = &method
	}

	if args.Status != "" {
		status, err := parseStatus(args.Status)
		if err != nil {
			return nil, err
		}
		spec.Status = &status
	}

	if args.Start != nil && args.End != nil && *args.Start > *args.End {
		return nil, errInvalidFilterArgs(
			fmt.Sprintf("invalid filter: start %d is after end %d", *args.Start, *args.End), nil)
	}
	spec.Start = copyBound(args.Start)
	spec.End = copyBound(args.End)

	return spec, nil
}

// parseStatus accepts "404" or "400-499". Both bounds are inclusive.
func parseStatus(raw string) (models.StatusSelector, error) {
	lowText, highText, isRange := strings.Cut(strings.TrimSpace(raw), "-")
	if !isRange {
		highText = lowText
	}

	lowText, highText = strings.TrimSpace(lowText), strings.TrimSpace(highText)
	if validate.Var(lowText, "number") != nil || validate.Var(highText, "number") != nil {
		return models.StatusSelector{}, errInvalidFilterArgs(
			fmt.Sprintf("invalid status %q: expected CODE or LOW-HIGH", raw), nil)
	}

	low, err := strconv.Atoi(lowText)
	if err != nil {
		return models.StatusSelector{}, errInvalidFilterArgs(
			fmt.Sprintf("invalid status %q: expected CODE or LOW-HIGH", raw), err)
	}
	high, err := strconv.Atoi(highText)
	if err != nil {
		return models.StatusSelector{}, errInvalidFilterArgs(
			fmt.Sprintf("invalid status %q: expected CODE or LOW-HIGH", raw), err)
	}

	if err := validate.Struct(&statusRange{Low: low, High: high}); err != nil {
		return models.StatusSelector{}, errInvalidFilterArgs(
			fmt.Sprintf("invalid status %q: codes must be within %d-%d with low <= high (%s)",
				raw, models.MinStatus, models.MaxStatus, strings.Join(validators.Describe(err), ", ")), err)
	}

	return models.StatusSelector{Low: low, High: high}, nil
}

func copyBound(b *int64) *int64 {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
