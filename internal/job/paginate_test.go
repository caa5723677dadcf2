package job

import (
	"fmt"
	"reflect"
	"testing"
)

func sequence(n int) []Listing {
	out := make([]Listing, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Listing{ID: fmt.Sprintf("%d", i+1)})
	}
	return out
}

func TestPaginate_PagesPartitionTheSequence(t *testing.T) {
	for _, length := range []int{0, 1, 4, 5, 6, 12, 23} {
		seq := sequence(length)
		perPage := 5
		_, _, totalPages := Paginate(seq, 1, perPage)
		wantPages := (length + perPage - 1) / perPage
		if totalPages != wantPages {
			t.Errorf("length %d: totalPages = %d, want %d", length, totalPages, wantPages)
		}
		sum := 0
		for p := 1; p <= totalPages; p++ {
			items, _, _ := Paginate(seq, p, perPage)
			sum += len(items)
		}
		if sum != length {
			t.Errorf("length %d: pages sum to %d items", length, sum)
		}
	}
}

func TestPaginate_EmptySequence(t *testing.T) {
	items, current, total := Paginate(nil, 3, 5)
	if len(items) != 0 || current != 1 || total != 0 {
		t.Errorf("empty sequence: got %d items, page %d of %d", len(items), current, total)
	}
}

func TestPaginate_ClampsOutOfRangePage(t *testing.T) {
	seq := sequence(12)
	wantItems, wantCurrent, wantTotal := Paginate(seq, 3, 5)
	gotItems, gotCurrent, gotTotal := Paginate(seq, 5, 5)
	if wantTotal != 3 || gotTotal != 3 {
		t.Fatalf("totalPages = %d/%d, want 3", wantTotal, gotTotal)
	}
	if gotCurrent != wantCurrent {
		t.Errorf("clamped page = %d, want %d", gotCurrent, wantCurrent)
	}
	if !reflect.DeepEqual(gotItems, wantItems) {
		t.Errorf("page 5 of 3 returned different items than page 3")
	}
	if len(gotItems) != 2 {
		t.Errorf("last page has %d items, want 2", len(gotItems))
	}
}

func TestPaginate_ClampsNonPositivePage(t *testing.T) {
	seq := sequence(7)
	items, current, _ := Paginate(seq, 0, 5)
	if current != 1 || len(items) != 5 {
		t.Errorf("page 0: got page %d with %d items", current, len(items))
	}
}

func TestPageNumbers_ShortSetsShowAllPages(t *testing.T) {
	got := PageNumbers(2, 5)
	want := []int{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PageNumbers(2, 5) = %v, want %v", got, want)
	}
	if len(PageNumbers(1, 0)) != 0 {
		t.Errorf("PageNumbers(1, 0) should be empty")
	}
}

func TestPageNumbers_Windowing(t *testing.T) {
	e := PageEllipsis
	cases := []struct {
		current, total int
		want           []int
	}{
		{1, 10, []int{1, 2, 3, 4, e, 10}},
		{3, 10, []int{1, 2, 3, 4, e, 10}},
		{4, 10, []int{1, e, 3, 4, 5, e, 10}},
		{7, 10, []int{1, e, 6, 7, 8, e, 10}},
		{8, 10, []int{1, e, 7, 8, 9, 10}},
		{10, 10, []int{1, e, 7, 8, 9, 10}},
	}
	for _, c := range cases {
		got := PageNumbers(c.current, c.total)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("PageNumbers(%d, %d) = %v, want %v", c.current, c.total, got, c.want)
		}
	}
}
