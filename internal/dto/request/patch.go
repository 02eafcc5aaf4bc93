package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

const (
	PatchAdd     = "add"
	PatchRemove  = "remove"
	PatchReplace = "replace"
	PatchMove    = "move"
	PatchCopy    = "copy"
	PatchTest    = "test"
)

// PatchOperation is one RFC 6902 operation.
type PatchOperation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// PatchDocument is an ordered list of operations applied to an UpdateMovieRequest.
type PatchDocument []PatchOperation

// PatchError reports the operation that could not be applied.
type PatchError struct {
	Path    string
	Message string
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("patch %s: %s", e.Path, e.Message)
}

// Field is the key the failure is reported under.
func (e *PatchError) Field() string {
	if field := strings.TrimPrefix(e.Path, "/"); field != "" {
		return strings.ToLower(field)
	}
	return "path"
}

type patchField struct {
	get   func(*UpdateMovieRequest) any
	set   func(*UpdateMovieRequest, json.RawMessage) error
	reset func(*UpdateMovieRequest)
}

var updateMovieFields = map[string]patchField{
	"titulo": {
		get:   func(d *UpdateMovieRequest) any { return d.Title },
		set:   func(d *UpdateMovieRequest, raw json.RawMessage) error { return setString(&d.Title, raw) },
		reset: func(d *UpdateMovieRequest) { d.Title = "" },
	},
	"genero": {
		get:   func(d *UpdateMovieRequest) any { return d.Genre },
		set:   func(d *UpdateMovieRequest, raw json.RawMessage) error { return setString(&d.Genre, raw) },
		reset: func(d *UpdateMovieRequest) { d.Genre = "" },
	},
	"duracao": {
		get:   func(d *UpdateMovieRequest) any { return d.Duration },
		set:   func(d *UpdateMovieRequest, raw json.RawMessage) error { return setInt(&d.Duration, raw) },
		reset: func(d *UpdateMovieRequest) { d.Duration = 0 },
	},
}

// ApplyTo runs the operations in order against dst and stops at the first
// failure. dst may be partially modified when an error is returned.
func (p PatchDocument) ApplyTo(dst *UpdateMovieRequest) error {
	for _, op := range p {
		if err := op.apply(dst); err != nil {
			return err
		}
	}
	return nil
}

func (o PatchOperation) apply(dst *UpdateMovieRequest) error {
	target, err := lookupField(o.Path)
	if err != nil {
		return err
	}

	switch strings.ToLower(o.Op) {
	case PatchAdd, PatchReplace:
		if o.Value == nil {
			return &PatchError{Path: o.Path, Message: "value is required"}
		}
		if err := target.set(dst, o.Value); err != nil {
			return &PatchError{Path: o.Path, Message: err.Error()}
		}

	case PatchRemove:
		target.reset(dst)

	case PatchTest:
		var probe UpdateMovieRequest
		if err := target.set(&probe, o.Value); err != nil {
			return &PatchError{Path: o.Path, Message: err.Error()}
		}
		if target.get(&probe) != target.get(dst) {
			return &PatchError{Path: o.Path, Message: "current value does not match the test value"}
		}

	case PatchCopy, PatchMove:
		source, err := lookupField(o.From)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(source.get(dst))
		if err != nil {
			return &PatchError{Path: o.From, Message: err.Error()}
		}
		if err := target.set(dst, raw); err != nil {
			return &PatchError{Path: o.Path, Message: err.Error()}
		}
		if strings.ToLower(o.Op) == PatchMove && !strings.EqualFold(o.From, o.Path) {
			source.reset(dst)
		}

	default:
		return &PatchError{Path: o.Path, Message: fmt.Sprintf("unsupported operation %q", o.Op)}
	}

	return nil
}

func lookupField(path string) (patchField, error) {
	name, ok := strings.CutPrefix(path, "/")
	if !ok {
		return patchField{}, &PatchError{Path: path, Message: "path must start with '/'"}
	}

	field, ok := updateMovieFields[strings.ToLower(name)]
	if !ok {
		return patchField{}, &PatchError{Path: path, Message: "the target location was not found"}
	}

	return field, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func setString(dst *string, raw json.RawMessage) error {
	if isNull(raw) {
		*dst = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("value must be a string")
	}
	*dst = s
	return nil
}

func setInt(dst *int, raw json.RawMessage) error {
	if isNull(raw) {
		*dst = 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("value must be a number")
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("value must be an integer")
	}
	*dst = int(f)
	return nil
}
