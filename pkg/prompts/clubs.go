package prompts

import (
	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// MembersBelongingToClubs maps every member to the clubs they belong to, in club order and
// without duplicates, e.g., {"Pam": ["Drama", "Art", "Chess"], ...}.
func MembersBelongingToClubs(clubs document.Collection) (map[string][]string, error) {
	memberships, err := query.FlatMap(clubs, func(c document.Document) ([]document.Document, error) {
		club, err := document.GetString(c, "club")
		if err != nil {
			return nil, err
		}
		members, err := document.GetStringList(c, "members")
		if err != nil {
			return nil, err
		}
		return query.Project(members, func(m string) (document.Document, error) {
			return document.Document{"member": m, "club": club}, nil
		})
	})
	if err != nil {
		return nil, err
	}

	groups, err := query.GroupBy(memberships, query.Field[string]("member"), query.Field[string]("club"))
	if err != nil {
		return nil, err
	}

	ret := make(map[string][]string, len(groups))
	for member, cs := range groups {
		ret[member] = query.Distinct(cs)
	}
	return ret, nil
}
