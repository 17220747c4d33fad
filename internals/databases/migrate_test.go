package database_test

import (
	"sort"
	"strings"
	"testing"

	"mutualaid_backend/internals/testutil"
)

type foreignKey struct {
	Table string
	From  string
	To    string
}

func TestForeignKeyDirections(t *testing.T) {
	db := testutil.NewTestDB(t)

	want := map[string]string{
		"profiles":        "",
		"groups":          "",
		"token_blacklist": "",
		"members":         "id_group->groups.id_group",
		"requests":        "id_group->groups.id_group",
		"supports":        "id_request->requests.id_request",
		"comments":        "id_request->requests.id_request id_support->supports.id_support username->profiles.username",
		"reactions":       "id_request->requests.id_request id_support->supports.id_support username->profiles.username",
		"images":          "id_request->requests.id_request id_support->supports.id_support",
	}
	for table, expected := range want {
		var fks []foreignKey
		if err := db.Raw("PRAGMA foreign_key_list(" + table + ")").Scan(&fks).Error; err != nil {
			t.Fatalf("foreign_key_list(%s): %v", table, err)
		}
		got := make([]string, 0, len(fks))
		for _, fk := range fks {
			got = append(got, fk.From+"->"+fk.Table+"."+fk.To)
		}
		sort.Strings(got)
		if strings.Join(got, " ") != expected {
			t.Errorf("%s foreign keys = %q, want %q", table, strings.Join(got, " "), expected)
		}
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db := testutil.NewTestDB(t)
	var on int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&on).Error; err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if on != 1 {
		t.Fatal("foreign keys are not enforced on the test database")
	}
}
