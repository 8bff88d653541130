// Package menuview は取得済みメニューの絞り込み・並び替え・ページ分割を行う。
// 入力は直近に取得した1ページ分だけで、サーバーには問い合わせない。
package menuview

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"foodorder/internal/domain/model"
)

// クライアント側のページサイズ
const PageSize = 50

type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// "none" / "" / "price-asc" / "price-desc"
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case string(SortPriceAsc):
		return SortPriceAsc, nil
	case string(SortPriceDesc):
		return SortPriceDesc, nil
	default:
		return SortNone, fmt.Errorf("unknown sort key %q", s)
	}
}

type Query struct {
	//name の部分一致（大文字小文字を区別しない）
	Filter string
	//空なら全カテゴリ
	Category string
	Sort     SortKey
	Page     int
}

type View struct {
	Items      []model.MenuItem
	Page       int
	TotalPages int
}

// Apply は filter -> category -> 安定ソート -> ページ分割 の順に適用する。
func Apply(items []model.MenuItem, q Query) View {
	needle := strings.ToLower(q.Filter)

	filtered := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		if !strings.Contains(strings.ToLower(it.Name), needle) {
			continue
		}
		if q.Category != "" && it.Category != q.Category {
			continue
		}
		filtered = append(filtered, it)
	}

	switch q.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(filtered, func(a, b model.MenuItem) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(filtered, func(a, b model.MenuItem) int { return cmp.Compare(b.Price, a.Price) })
	}

	page := max(q.Page, 1)
	start := min((page-1)*PageSize, len(filtered))
	end := min(start+PageSize, len(filtered))

	return View{
		Items:      filtered[start:end],
		Page:       page,
		TotalPages: (len(filtered) + PageSize - 1) / PageSize,
	}
}

// 出てきた順の重複なしカテゴリ
func Categories(items []model.MenuItem) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0)
	for _, it := range items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	return out
}

// State は入力が変わるたびに View を作り直す。
type State struct {
	items []model.MenuItem
	query Query
	view  View
}

func NewState() *State {
	s := &State{query: Query{Page: 1}}
	s.recompute()
	return s
}

// 取得し直したページで置き換える
func (s *State) SetItems(items []model.MenuItem) {
	s.items = append([]model.MenuItem(nil), items...)
	s.recompute()
}

func (s *State) SetFilter(text string) {
	s.query.Filter = text
	s.recompute()
}

func (s *State) SetCategory(category string) {
	s.query.Category = category
	s.recompute()
}

func (s *State) SetSort(key SortKey) {
	s.query.Sort = key
	s.recompute()
}

func (s *State) SetPage(page int) {
	s.query.Page = page
	s.recompute()
}

func (s *State) Query() Query { return s.query }

func (s *State) View() View { return s.view }

func (s *State) Categories() []string { return Categories(s.items) }

// 取得済みから id で探す
func (s *State) Find(id string) (model.MenuItem, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.MenuItem{}, false
}

func (s *State) recompute() {
	s.view = Apply(s.items, s.query)
}
