package backend

import (
	"net/url"
	"sort"
	"strconv"
)

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func idPath(id int64) string { return strconv.FormatInt(id, 10) }

func seg(s string) string { return url.PathEscape(s) }
