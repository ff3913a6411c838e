package article

import (
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchColumns 关键词匹配的字段
var searchColumns = []string{"title", "description", "content"}

// BuildSearchPredicate 将关键词按空白拆分，每个词须命中任一字段，词之间为 AND
// 关键词为空时返回空字符串
func BuildSearchPredicate(keyword string) (string, []any) {
	terms := strings.Fields(keyword)
	if len(terms) == 0 {
		return "", nil
	}

	groups := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms)*len(searchColumns))
	for _, term := range terms {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		conds := make([]string, 0, len(searchColumns))
		for _, col := range searchColumns {
			conds = append(conds, col+` LIKE ? ESCAPE '\'`)
			args = append(args, pattern)
		}
		groups = append(groups, "("+strings.Join(conds, " OR ")+")")
	}

	return strings.Join(groups, " AND "), args
}
