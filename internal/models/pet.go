package models

type Pet struct {
	Base

	Name        string `gorm:"size:100;not null" json:"name"`
	Species     string `gorm:"size:50;not null;index" json:"species"`
	Breed       string `gorm:"size:100" json:"breed"`
	Age         *int   `json:"age,omitempty"`
	Gender      string `gorm:"size:10" json:"gender,omitempty"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:500" json:"imageUrl"`
	Status      string `gorm:"size:20;default:'available';index" json:"status"`
	Approved    bool   `gorm:"default:false;index" json:"approved"`

	AddedByID string `gorm:"type:uuid;not null;index" json:"-"`
	AddedBy   *User  `gorm:"foreignKey:AddedByID" json:"-"`
}

func (p *Pet) OwnerID() string { return p.AddedByID }

// PetView is the listing shape with the owner projected to {id, name, email}.
type PetView struct {
	Pet
	AddedBy any `json:"addedBy"`
}

func (p Pet) View() PetView {
	var added any = p.AddedByID
	if p.AddedBy != nil {
		added = p.AddedBy.Ref()
	}
	return PetView{Pet: p, AddedBy: added}
}

func PetViews(pets []Pet) []PetView {
	out := make([]PetView, 0, len(pets))
	for _, p := range pets {
		out = append(out, p.View())
	}
	return out
}
