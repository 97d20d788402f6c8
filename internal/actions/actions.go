package actions

import "context"

// UI areas the panel can place an action menu in.
const (
	AreaMain    = "main"
	AreaDetails = "details"
)

// Entity is a read-only record describing a reviewed item, as delivered by
// the review backend. Field names and value shapes are owned by the backend;
// this code only reads from it.
type Entity map[string]any

// Type returns the entity's type name, or "" when absent.
func (e Entity) Type() string {
	return e.Str("type")
}

// ID returns the entity's numeric id, tolerating the integer shapes JSON
// decoding produces. The second return is false when no usable id exists.
func (e Entity) ID() (int64, bool) {
	return asInt64(e["id"])
}

// Str returns the named field as a string, or "" when absent or not a string.
func (e Entity) Str(key string) string {
	s, _ := e[key].(string)
	return s
}

// Params carries an action's parameters. The map shape is the wire contract
// with the panel; typed views are parsed from it by the executing hook.
type Params map[string]any

// Str returns the named param as a string, or "" when absent or not a string.
func (p Params) Str(key string) string {
	s, _ := p[key].(string)
	return s
}

// Clone returns a shallow copy, so hooks can add fields without mutating
// the caller's map.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Descriptor is one selectable user action offered to the panel. Descriptors
// are immutable once constructed; slice order is presentation order.
type Descriptor struct {
	Name        string `json:"name"`
	Caption     string `json:"caption"`
	Group       string `json:"group"`
	Description string `json:"description"`
	Params      Params `json:"params"`
}

// Hook enumerates and executes actions for the panel. GenerateActions
// returns the descriptors to offer for one entity; ExecuteAction performs
// the side effect for one of them. Implementations that only care about a
// subset of action names delegate the rest to the hook they wrap.
type Hook interface {
	GenerateActions(ctx context.Context, entity Entity, names []string, uiArea string) ([]Descriptor, error)
	ExecuteAction(ctx context.Context, name string, params Params, entity Entity) error
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
