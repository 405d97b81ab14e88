package prompts

import (
	"github.com/l7mp/dquery/pkg/document"
	"github.com/l7mp/dquery/pkg/query"
)

// BossLoyalty returns every boss with the total loyalty of their sidekicks, in boss key order:
// [{"bossName": "Jafar", "sidekickLoyalty": 3}, ...]. A sidekick belongs to the boss whose
// name is in its "boss" field.
func BossLoyalty(bosses document.Document, sidekicks document.Collection) (document.Collection, error) {
	bs, err := records(bosses, "")
	if err != nil {
		return nil, err
	}

	return query.JoinMany(bs, sidekicks, query.Field[string]("name"), query.Field[string]("boss"),
		func(b document.Document, sks []document.Document) (document.Document, error) {
			name, err := document.GetString(b, "name")
			if err != nil {
				return nil, err
			}
			loyalty, err := query.Sum(sks, query.Field[int64]("loyaltyToBoss"))
			if err != nil {
				return nil, err
			}
			return document.Document{"bossName": name, "sidekickLoyalty": loyalty}, nil
		})
}
