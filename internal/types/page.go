package types

// MaxPageLimit bounds the number of rows any list call returns
const MaxPageLimit = 100

// Page is an offset/limit window bound from the query string
type Page struct {
	Offset int `form:"offset" binding:"min=0"`
	Limit  int `form:"limit,default=100" binding:"min=0"`
}

// Clamp returns the page with a non-negative offset and a limit no larger
// than MaxPageLimit
func (p Page) Clamp() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit < 0 {
		p.Limit = 0
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
