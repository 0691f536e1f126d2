package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestClassifyDriverErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"value too long", &pgconn.PgError{Code: "22001"}, KindData},
		{"numeric out of range", &pgconn.PgError{Code: "22003"}, KindData},
		{"unique violation", &pgconn.PgError{Code: "23505"}, KindDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, KindDuplicate},
		{"translated duplicate", gorm.ErrDuplicatedKey, KindDuplicate},
		{"record not found", gorm.ErrRecordNotFound, KindNotFound},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, KindInfrastructure},
		{"plain error", errors.New("connection refused"), KindInfrastructure},
	}
	for _, tc := range cases {
		fe := classify(tc.err, "boom")
		if fe.Kind != tc.want {
			t.Errorf("%s: kind = %d, want %d", tc.name, fe.Kind, tc.want)
		}
		if wantRecoverable := tc.want != KindInfrastructure; fe.Recoverable() != wantRecoverable {
			t.Errorf("%s: recoverable = %v, want %v", tc.name, fe.Recoverable(), wantRecoverable)
		}
		if !errors.Is(fe, tc.err) {
			t.Errorf("%s: cause not preserved", tc.name)
		}
	}
}

func TestClassifyInsertPicksMessageByKind(t *testing.T) {
	fe := classifyInsert(&pgconn.PgError{Code: "22001"}, "dup message", "data message")
	if fe.Kind != KindData || fe.Message != "data message" {
		t.Errorf("data error: kind = %d message = %q", fe.Kind, fe.Message)
	}

	fe = classifyInsert(&pgconn.PgError{Code: "23505"}, "dup message", "data message")
	if fe.Kind != KindDuplicate || fe.Message != "dup message" {
		t.Errorf("duplicate: kind = %d message = %q", fe.Kind, fe.Message)
	}

	fe = classifyInsert(errors.New("connection refused"), "dup message", "data message")
	if fe.Kind != KindInfrastructure {
		t.Errorf("infrastructure: kind = %d", fe.Kind)
	}
	if fe.Recoverable() {
		t.Error("infrastructure insert failure must not be recoverable")
	}
}
