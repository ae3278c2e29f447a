package shared

import "testing"

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, info := Paginate(items, PageRequest{Page: 2, Limit: 2})
	if len(page) != 2 || page[0] != 3 || page[1] != 4 {
		t.Fatalf("unexpected page contents: %v", page)
	}
	if info.Total != 5 || info.TotalPages != 3 {
		t.Fatalf("unexpected pagination info: %+v", info)
	}

	page, info = Paginate(items, PageRequest{Page: 9, Limit: 2})
	if len(page) != 0 {
		t.Fatalf("expected empty page past the end, got %v", page)
	}
	if info.Total != 5 {
		t.Fatalf("unexpected total: %d", info.Total)
	}

	page, info = Paginate([]int{}, PageRequest{Page: 1, Limit: 10})
	if len(page) != 0 || info.TotalPages != 1 {
		t.Fatalf("unexpected empty-collection result: %v %+v", page, info)
	}
}
