package specql_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zoobzio/specql"
)

func TestDialects(t *testing.T) {
	expected := []specql.Dialect{specql.MSSQL, specql.MySQL, specql.Postgres, specql.SQLite}
	if got := specql.Dialects(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Dialects() = %v, want %v", got, expected)
	}
}

func TestLookup(t *testing.T) {
	for _, d := range specql.Dialects() {
		r, err := specql.Lookup(d)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", d, err)
		}
		if r.Name() != d {
			t.Errorf("Lookup(%q).Name() = %q", d, r.Name())
		}
	}

	if _, err := specql.Lookup("db2"); !errors.Is(err, specql.ErrUnsupportedDialect) {
		t.Errorf("Lookup(db2) error = %v, want ErrUnsupportedDialect", err)
	}
}

func TestLookup_RowLimitStyle(t *testing.T) {
	for _, d := range specql.Dialects() {
		r, _ := specql.Lookup(d)
		want := specql.RowLimitSuffix
		if d == specql.MSSQL {
			want = specql.RowLimitTop
		}
		if got := r.Capabilities().RowLimit; got != want {
			t.Errorf("%s RowLimit = %v, want %v", d, got, want)
		}
	}
}

// Each dialect must reject exactly the features its Capabilities leave out.
func TestLookup_ValidateMatchesCapabilities(t *testing.T) {
	join := func(jt specql.JoinType) *specql.QuerySpec {
		return specql.Select(specql.T("users")).
			Join(jt, "orders", specql.Cmp(specql.Raw("orders.user_id"), specql.EQ, specql.Raw("users.id"))).
			Spec()
	}
	grouped := func() *specql.QuerySpec {
		return specql.Select(specql.T("orders")).
			Columns(specql.C("orders", "total")).
			Aggregate(specql.AggSum, specql.C("orders", "total")).
			GroupBy(specql.C("orders", "status")).
			Spec()
	}
	having := func() *specql.QuerySpec {
		return specql.Select(specql.T("orders")).
			Aggregate(specql.AggSum, specql.C("orders", "total")).
			GroupBy(specql.C("orders", "status")).
			Having(specql.Cmp(specql.C("orders", "total"), specql.GT, 100)).
			Spec()
	}

	for _, d := range specql.Dialects() {
		r, _ := specql.Lookup(d)
		caps := r.Capabilities()

		checks := []struct {
			feature   string
			spec      *specql.QuerySpec
			supported bool
		}{
			{"having", having(), caps.Having},
			{"right join", join(specql.RightJoin), caps.RightJoin},
			{"full join", join(specql.FullJoin), caps.FullJoin},
			{"distinct with order by", specql.Select(specql.T("users")).Distinct().OrderBy("users.id").Spec(), caps.DistinctWithOrderBy},
			{"limit without order by", specql.Select(specql.T("users")).Limit(5).Spec(), !caps.LimitRequiresOrderBy},
			{"ungrouped column", grouped(), !caps.StrictGroupBy},
		}

		for _, c := range checks {
			t.Run(string(d)+"/"+c.feature, func(t *testing.T) {
				err := r.Validate(c.spec)
				if c.supported && err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				if !c.supported && !errors.Is(err, specql.ErrInvalidSpec) {
					t.Errorf("Validate() error = %v, want rejection", err)
				}
			})
		}
	}
}
