package pet

import "github.com/tasmimahana/cse470/internal/models"

// Approve marks the pet visible to adopters and reports whether the flag
// actually changed.
func Approve(p *models.Pet) bool {
	if p.Approved {
		return false
	}
	p.Approved = true
	return true
}

// Unapprove hides the pet again.
func Unapprove(p *models.Pet) bool {
	if !p.Approved {
		return false
	}
	p.Approved = false
	return true
}
