package paging

import (
	"fmt"

	"github.com/iur1nott/pagedhash/errs"
	"github.com/iur1nott/pagedhash/internal/model"
)

// Paginate - Packs records, in order, into pages holding at most pageByteBudget bytes each.
// A record bigger than the budget gets a page of its own. The result always holds at least one page,
// so an empty input gives one empty page 0.
//   - records is the ordered sequence of records to pack
//   - pageByteBudget is the max number of serialized bytes per page, must be higher than 0 (zero)
//
// It returns:
//   - pages where PageNumber equals the position in the slice
//   - err is of type errs.InvalidConfiguration if the budget is not positive
func Paginate(records []model.Record, pageByteBudget int64) (pages []model.Page, err error) {
	if pageByteBudget <= 0 {
		err = errs.InvalidConfiguration{Msg: fmt.Sprintf("page byte budget must be a positive value higher than 0 (zero), got %d", pageByteBudget)}
		return
	}

	pages = make([]model.Page, 0)
	current := model.NewPage(0)

	// closeCurrent appends the open page and opens the next one
	closeCurrent := func() {
		pages = append(pages, current)
		current = model.NewPage(int64(len(pages)))
	}

	for _, record := range records {
		size := record.Size()

		// A record that alone exceeds the budget is isolated on its own page
		if size > pageByteBudget {
			if current.Len() > 0 {
				closeCurrent()
			}
			current.Append(record)
			closeCurrent()
			continue
		}

		if current.OccupiedBytes+size > pageByteBudget {
			closeCurrent()
		}

		current.Append(record)
	}

	if current.Len() > 0 || len(pages) == 0 {
		pages = append(pages, current)
	}

	return
}
