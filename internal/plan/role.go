package plan

// DayRole is the structural role a day plays inside a week skeleton.
// Roles are assigned before any time numbers exist.
type DayRole string

const (
	RoleRest DayRole = "rest"
	RoleEasy DayRole = "easy"
	RoleHard DayRole = "hard"
	RoleLong DayRole = "long"
)

// SessionType describes what kind of workout a session is. Before template
// selection the type is derived from the day role; after selection it comes
// from the chosen template.
type SessionType string

const (
	TypeRest     SessionType = "rest"
	TypeEasy     SessionType = "easy"
	TypeRecovery SessionType = "recovery"
	TypeTempo    SessionType = "tempo"
	TypeInterval SessionType = "interval"
	TypeHills    SessionType = "hills"
	TypeLong     SessionType = "long"
)

// Intent is the immutable purpose tag on a session. It never changes after
// assembly, even when template selection swaps the session type within the
// same intensity class.
type Intent string

const (
	IntentRest    Intent = "rest"
	IntentEasy    Intent = "easy"
	IntentLong    Intent = "long"
	IntentQuality Intent = "quality"
)

// DefaultType returns the session type a day of this role carries before a
// template has been chosen for it.
func (r DayRole) DefaultType() SessionType {
	switch r {
	case RoleRest:
		return TypeRest
	case RoleEasy:
		return TypeEasy
	case RoleHard:
		return TypeTempo
	case RoleLong:
		return TypeLong
	default:
		return TypeRest
	}
}

// Intent returns the immutable purpose tag for a day of this role.
func (r DayRole) Intent() Intent {
	switch r {
	case RoleRest:
		return IntentRest
	case RoleEasy:
		return IntentEasy
	case RoleHard:
		return IntentQuality
	case RoleLong:
		return IntentLong
	default:
		return IntentRest
	}
}

// CompatibleTypes returns the session types a template must have to be legal
// for a day of this role.
func (r DayRole) CompatibleTypes() []SessionType {
	switch r {
	case RoleRest:
		return []SessionType{TypeRest}
	case RoleEasy:
		return []SessionType{TypeEasy, TypeRecovery}
	case RoleHard:
		return []SessionType{TypeTempo, TypeInterval, TypeHills}
	case RoleLong:
		return []SessionType{TypeLong}
	default:
		return nil
	}
}

// IsHard reports whether a session type counts as a hard (quality) effort
// for invariant purposes.
func (t SessionType) IsHard() bool {
	switch t {
	case TypeTempo, TypeInterval, TypeHills:
		return true
	case TypeRest, TypeEasy, TypeRecovery, TypeLong:
		return false
	default:
		return false
	}
}
