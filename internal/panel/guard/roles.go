package guard

// Platform role IDs as issued by the backend.
const (
	RoleAdmin     = 1
	RoleUser      = 2
	RoleOrganiser = 3
)

// Routes maps a screen name to the role IDs allowed to open it. A nil slice
// admits any authenticated session. Screens absent from the table are public.
type Routes map[string][]int

// DefaultRoutes is the panel's screen table.
func DefaultRoutes() Routes {
	return Routes{
		"dashboard": {RoleAdmin, RoleOrganiser},
		"category":  {RoleAdmin},
		"user":      {RoleAdmin},
		"approvals": {RoleAdmin},
		"city":      {RoleAdmin},
		"events":    {RoleAdmin, RoleOrganiser},
	}
}
