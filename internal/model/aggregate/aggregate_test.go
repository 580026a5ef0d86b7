package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_OnSplit_ShouldPreserveRelativeOrder(t *testing.T) {
	records := []expense.Record{
		{ID: 1, Category: expense.Food, OriginalCategory: expense.Food},
		{ID: 2, Category: "Rent", OriginalCategory: "Rent"},
		{ID: 3, Category: "Concert", OriginalCategory: expense.Extra},
		{ID: 4, Category: "Gift", OriginalCategory: "Gift"},
	}

	daily, other := Split(records)

	assert.Equal(t, []int64{1, 3}, ids(daily))
	assert.Equal(t, []int64{2, 4}, ids(other))
}

func Test_OnGroupByCategoryNote_ShouldMergeMatchingLines(t *testing.T) {
	records := []expense.Record{
		{Category: expense.Food, Note: "lunch", Amount: 20},
		{Category: expense.Travel, Amount: 10},
		{Category: expense.Food, Note: "lunch", Amount: 30},
		{Category: expense.Food, Note: "dinner", Amount: 25},
	}

	lines := GroupByCategoryNote(records)

	assert.Equal(t, []Line{
		{Category: expense.Food, Note: "lunch", Amount: 50},
		{Category: expense.Travel, Amount: 10},
		{Category: expense.Food, Note: "dinner", Amount: 25},
	}, lines)
}

func Test_OnGroupByCategoryNote_ShouldBeIdempotent(t *testing.T) {
	records := []expense.Record{
		{Category: expense.Food, Note: "lunch", Amount: 20},
		{Category: expense.Food, Note: "lunch", Amount: 30},
		{Category: expense.Utility, Amount: 100},
	}

	once := GroupByCategoryNote(records)

	regrouped := make([]expense.Record, 0, len(once))
	for _, line := range once {
		regrouped = append(regrouped, expense.Record{
			Category: line.Category,
			Note:     line.Note,
			Amount:   line.Amount,
		})
	}

	assert.Equal(t, once, GroupByCategoryNote(regrouped))
}

func Test_OnGroupByCategory_ShouldSortByAmountDesc(t *testing.T) {
	records := []expense.Record{
		{Category: expense.Food, Amount: 30},
		{Category: "Rent", Amount: 1200},
		{Category: expense.Food, Amount: 70},
		{Category: expense.Travel, Amount: 100},
	}

	lines := GroupByCategory(records)

	assert.Equal(t, []Line{
		{Category: "Rent", Amount: 1200},
		{Category: expense.Food, Amount: 100},
		{Category: expense.Travel, Amount: 100},
	}, lines)
}

func Test_OnBucketByDate_ShouldKeepPerDayOrder(t *testing.T) {
	records := []expense.Record{
		{ID: 1, Date: "2022-10-12"},
		{ID: 2, Date: "2022-10-11"},
		{ID: 3, Date: "2022-10-12"},
	}

	buckets := BucketByDate(records)

	assert.Equal(t, []int64{1, 3}, ids(buckets["2022-10-12"]))
	assert.Equal(t, []int64{2}, ids(buckets["2022-10-11"]))
	assert.Equal(t, []string{"2022-10-12", "2022-10-11"}, Dates(buckets))
}

func Test_OnSum_ShouldAddAmounts(t *testing.T) {
	records := []expense.Record{{Amount: 10}, {Amount: 20.5}, {Amount: 0.5}}

	assert.Equal(t, 31.0, Sum(records))
	assert.Zero(t, Sum(nil))
}

func ids(records []expense.Record) []int64 {
	res := make([]int64, 0, len(records))
	for _, rec := range records {
		res = append(res, rec.ID)
	}
	return res
}
