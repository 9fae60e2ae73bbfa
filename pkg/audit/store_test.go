package audit

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := LookupEvent{
		Subject:   "analyst",
		ClientIP:  "10.0.0.1",
		Operation: "pathway_count",
		DrugID:    "DB00001",
		Success:   true,
	}

	mock.ExpectExec(`INSERT INTO audit_messages`).
		WithArgs(
			FacilityLocal0,    // facility
			int(SeverityInfo), // severity
			sqlmock.AnyArg(),  // timestamp
			sqlmock.AnyArg(),  // hostname
			"drugbank",        // appname
			sqlmock.AnyArg(),  // procid
			"lookup",          // msgid
			sqlmock.AnyArg(),  // sdata (JSON)
			"analyst looked up pathway_count of DB00001",
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Save(event); err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveLoadEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	mock.ExpectExec(`INSERT INTO audit_messages`).
		WithArgs(
			FacilityLocal0,
			int(SeverityNotice),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			"drugbank",
			sqlmock.AnyArg(),
			"load",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Save(LoadEvent{Source: "a.xml", Target: "postgres", Drugs: 3, Success: true}); err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveNilDB(t *testing.T) {
	store := &Store{}
	if err := store.Save(LoadEvent{}); err != nil {
		t.Errorf("Save() with nil db error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() with nil db error = %v", err)
	}
}

func TestNewStoreWithoutURL(t *testing.T) {
	t.Setenv("DRUGBANK_AUDIT_DATABASE_URL", "")
	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if store != nil {
		t.Error("expected nil store without DRUGBANK_AUDIT_DATABASE_URL")
	}
}
