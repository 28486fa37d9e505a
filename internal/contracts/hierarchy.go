package contracts

import (
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
)

type HierarchyTreeResponse struct {
	AccountTypes []*hierarchy.AccountType `json:"accountTypes"`
}
