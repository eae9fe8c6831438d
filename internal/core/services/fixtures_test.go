package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/library_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/core/services"
	"github.com/google/uuid"
)

// testClock is a settable clock shared by every service of a fixture.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// libraryFixture wires the services over one memStore with a small catalog:
// "Dune" has copies B001 and B002, "Emma" has E001, the archived "Old Atlas"
// has A001, and M001 is a Dune copy in maintenance.
type libraryFixture struct {
	store *memStore
	clock *testClock

	access    portssvc.AccessPolicySvc
	config    portssvc.LibraryConfigSvcFacade
	borrowing portssvc.BorrowingSvcFacade
	copies    portssvc.BookCopySvcFacade
	books     portssvc.BookSvcFacade
	users     portssvc.UserSvcFacade

	librarianID string
	memberID    string
	member2ID   string
	inactiveID  string

	duneID  string
	emmaID  string
	atlasID string
}

var fixtureStart = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newLibraryFixture() *libraryFixture {
	f := &libraryFixture{
		store: newMemStore(),
		clock: &testClock{now: fixtureStart},
	}
	audit := domain.NewAuditFields(fixtureStart, "seed")

	f.librarianID = f.addUser("librarian", domain.RoleLibrarian, true)
	f.memberID = f.addUser("alice", domain.RoleMember, true)
	f.member2ID = f.addUser("bob", domain.RoleMember, true)
	f.inactiveID = f.addUser("carol", domain.RoleMember, false)

	authorID := uuid.NewString()
	f.store.putAuthor(domain.Author{AuthorID: authorID, Name: "Frank Herbert", AuditFields: audit})

	f.duneID = f.addBook("Dune", authorID, false)
	f.emmaID = f.addBook("Emma", authorID, false)
	f.atlasID = f.addBook("Old Atlas", authorID, true)

	f.addCopy(f.duneID, "B001", domain.CopyAvailable)
	f.addCopy(f.duneID, "B002", domain.CopyAvailable)
	f.addCopy(f.emmaID, "E001", domain.CopyAvailable)
	f.addCopy(f.atlasID, "A001", domain.CopyAvailable)
	f.addCopy(f.duneID, "M001", domain.CopyMaintenance)

	clock := services.Clock(f.clock.Now)
	f.access = services.NewAccessPolicy(f.store)
	f.config = services.NewLibraryConfigService(f.store, f.access)
	if err := f.config.Load(context.Background()); err != nil {
		panic(err)
	}
	f.borrowing = services.NewBorrowingService(f.store, f.store, f.config, f.access, services.WithBorrowingClock(clock))
	f.copies = services.NewBookCopyService(f.store, f.store, f.store, f.access)
	f.books = services.NewBookService(f.store, f.store, f.store, f.config, f.access, services.WithBookClock(clock))
	f.users = services.NewUserService(f.store, f.store, f.config, f.access, services.WithUserClock(clock))
	return f
}

func (f *libraryFixture) addUser(username string, role domain.UserRole, active bool) string {
	id := uuid.NewString()
	f.store.putUser(domain.User{
		UserID:      id,
		Username:    username,
		Name:        username,
		Role:        role,
		IsActive:    active,
		AuditFields: domain.NewAuditFields(fixtureStart, "seed"),
	})
	return id
}

func (f *libraryFixture) addBook(title, authorID string, archived bool) string {
	id := uuid.NewString()
	f.store.putBook(domain.Book{
		BookID:      id,
		Title:       title,
		AuthorID:    authorID,
		IsArchived:  archived,
		AuditFields: domain.NewAuditFields(fixtureStart, "seed"),
	})
	return id
}

func (f *libraryFixture) addCopy(bookID, barcode string, status domain.CopyStatus) string {
	id := uuid.NewString()
	f.store.putCopy(domain.BookCopy{
		CopyID:      id,
		BookID:      bookID,
		Barcode:     barcode,
		Status:      status,
		AuditFields: domain.NewAuditFields(fixtureStart, "seed"),
	})
	return id
}

// setMaxBooks changes the borrow limit through the config service.
func (f *libraryFixture) setMaxBooks(n int) error {
	_, err := f.config.UpdateConfig(context.Background(), updateMaxBooks(n), f.librarianID)
	return err
}
