package dataset

import "fmt"

// ManagerCutoff is the highest seller id credited with sales; ids above it
// belong to managers.
const ManagerCutoff = 1014

type team struct {
	managerID int
	manager   string
	members   []string
}

var roster = []team{
	{1015, "Mariana Costa", []string{"Carlos Almeida", "Bruno Santos", "Rafael Pereira", "Diego Rocha", "Lucas Martins"}},
	{1016, "Ricardo Nogueira", []string{"Felipe Araujo", "Thiago Lima", "André Pacheco", "Eduardo Farias", "Renato Barros"}},
	{1017, "Patricia Menezes", []string{"Gustavo Teixeira", "Henrique Lopes", "Igor Batista", "Marcelo Guedes", "Victor Rangel"}},
}

// Sellers returns the fixed roster: fifteen sellers numbered from 1000
// followed by their three managers.
func Sellers() []Seller {
	var out []Seller
	id := 1000
	for _, t := range roster {
		managerID := t.managerID
		for _, name := range t.members {
			out = append(out, Seller{ID: id, Name: name, ManagerID: &managerID, ManagerName: t.manager})
			id++
		}
	}
	for _, t := range roster {
		out = append(out, Seller{ID: t.managerID, Name: t.manager})
	}
	return out
}

// ActiveSellers keeps the sellers whose id is at or below cutoff.
func ActiveSellers(sellers []Seller, cutoff int) []Seller {
	var out []Seller
	for _, s := range sellers {
		if s.ID <= cutoff {
			out = append(out, s)
		}
	}
	return out
}

// ValidateHierarchy checks that every seller with a manager points at an
// existing seller who has no manager of their own.
func ValidateHierarchy(sellers []Seller) error {
	byID := make(map[int]Seller, len(sellers))
	for _, s := range sellers {
		if _, dup := byID[s.ID]; dup {
			return fmt.Errorf("duplicate seller id %d", s.ID)
		}
		byID[s.ID] = s
	}
	for _, s := range sellers {
		if s.IsManager() {
			continue
		}
		m, ok := byID[*s.ManagerID]
		if !ok {
			return fmt.Errorf("seller %d: unknown manager %d", s.ID, *s.ManagerID)
		}
		if !m.IsManager() {
			return fmt.Errorf("seller %d: manager %d has a manager", s.ID, m.ID)
		}
		if m.Name != s.ManagerName {
			return fmt.Errorf("seller %d: manager name %q does not match %q", s.ID, s.ManagerName, m.Name)
		}
	}
	return nil
}
