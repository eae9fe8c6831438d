package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/SscSPs/library_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/library_management_app/internal/utils/pagination"
)

var errInjected = errors.New("injected store failure")

// memData is one snapshot of the library. Atomic units work on a clone and
// replace the committed snapshot only when they succeed.
type memData struct {
	users   map[string]domain.User
	authors map[string]domain.Author
	books   map[string]domain.Book
	copies  map[string]domain.BookCopy
	txns    map[string]domain.Transaction
	config  *domain.LibraryPolicy
}

func newMemData() *memData {
	return &memData{
		users:   map[string]domain.User{},
		authors: map[string]domain.Author{},
		books:   map[string]domain.Book{},
		copies:  map[string]domain.BookCopy{},
		txns:    map[string]domain.Transaction{},
	}
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (d *memData) clone() *memData {
	c := &memData{
		users:   cloneMap(d.users),
		authors: cloneMap(d.authors),
		books:   cloneMap(d.books),
		copies:  cloneMap(d.copies),
		txns:    cloneMap(d.txns),
	}
	if d.config != nil {
		cfg := *d.config
		c.config = &cfg
	}
	return c
}

// decorate fills the joined read-model fields of a transaction.
func (d *memData) decorate(t domain.Transaction) domain.Transaction {
	if c, ok := d.copies[t.BookCopyID]; ok {
		t.Barcode = c.Barcode
		t.BookID = c.BookID
		if b, ok := d.books[c.BookID]; ok {
			t.BookTitle = b.Title
		}
	}
	return t
}

func (d *memData) countBorrowed(memberID string) int {
	n := 0
	for _, c := range d.copies {
		if c.Status == domain.CopyBorrowed && c.BorrowedBy != nil && *c.BorrowedBy == memberID {
			n++
		}
	}
	return n
}

// memStore is an in-memory stand-in for the postgres repositories. One mutex
// serialises every unit, which is the strongest isolation the real store offers.
type memStore struct {
	mu   sync.Mutex
	data *memData

	// failOn names a tx store method that returns errInjected.
	failOn string
}

func newMemStore() *memStore {
	return &memStore{data: newMemData()}
}

var (
	_ portsrepo.UserRepositoryFacade        = (*memStore)(nil)
	_ portsrepo.AuthorRepositoryFacade      = (*memStore)(nil)
	_ portsrepo.BookRepositoryFacade        = (*memStore)(nil)
	_ portsrepo.BookCopyRepositoryFacade    = (*memStore)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*memStore)(nil)
	_ portsrepo.BorrowingRepository         = (*memStore)(nil)
	_ portsrepo.LibraryConfigRepository     = (*memStore)(nil)
	_ portsrepo.BorrowingTxStore            = (*memTx)(nil)
)

// --- seeding and inspection helpers ---

func (s *memStore) putUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.users[u.UserID] = u
}

func (s *memStore) putAuthor(a domain.Author) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.authors[a.AuthorID] = a
}

func (s *memStore) putBook(b domain.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.books[b.BookID] = b
}

func (s *memStore) putCopy(c domain.BookCopy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.copies[c.CopyID] = c
}

func (s *memStore) copyByBarcode(barcode string) domain.BookCopy {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.data.copies {
		if c.Barcode == barcode {
			return c
		}
	}
	return domain.BookCopy{}
}

func (s *memStore) transaction(id string) domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.txns[id]
}

func (s *memStore) transactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.txns)
}

// --- UserRepositoryFacade ---

func (s *memStore) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return findUser(s.data, userID)
}

func findUser(d *memData, userID string) (*domain.User, error) {
	u, ok := d.users[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("user")
	}
	return &u, nil
}

func (s *memStore) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user")
}

func (s *memStore) FindMembers(ctx context.Context, limit int, offset int) ([]domain.MemberSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var members []domain.MemberSummary
	for _, u := range s.data.users {
		if u.Role != domain.RoleMember {
			continue
		}
		total := 0
		for _, t := range s.data.txns {
			if t.BorrowedBy == u.UserID {
				total++
			}
		}
		members = append(members, domain.MemberSummary{
			User:               u,
			ActiveBorrowsCount: s.data.countBorrowed(u.UserID),
			TotalBorrowsCount:  total,
		})
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Username < members[j].Username })
	return page(members, limit, offset), nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func (s *memStore) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.users {
		if u.Username == user.Username {
			return apperrors.NewConflictError("username already exists")
		}
	}
	s.data.users[user.UserID] = user
	return nil
}

func (s *memStore) setMemberActive(memberID string, active bool, updatedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.data.users[memberID]
	if !ok || u.Role != domain.RoleMember {
		return apperrors.NewNotFoundError("member")
	}
	if !active && s.data.countBorrowed(memberID) > 0 {
		return apperrors.NewValidationFailedError("Cannot deactivate member with active borrows")
	}
	u.IsActive = active
	u.LastUpdatedBy = updatedBy
	s.data.users[memberID] = u
	return nil
}

func (s *memStore) ActivateMember(ctx context.Context, memberID string, updatedBy string) error {
	return s.setMemberActive(memberID, true, updatedBy)
}

func (s *memStore) DeactivateMember(ctx context.Context, memberID string, updatedBy string) error {
	return s.setMemberActive(memberID, false, updatedBy)
}

// --- AuthorRepositoryFacade ---

func (s *memStore) FindAuthorByID(ctx context.Context, authorID string) (*domain.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data.authors[authorID]
	if !ok {
		return nil, apperrors.NewNotFoundError("author")
	}
	return &a, nil
}

func (s *memStore) FindAuthors(ctx context.Context, filter portsrepo.AuthorFilter) ([]domain.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Author
	for _, a := range s.data.authors {
		if filter.Nationality != nil && (a.Nationality == nil || *a.Nationality != *filter.Nationality) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, filter.Limit, filter.Offset), nil
}

func (s *memStore) SaveAuthor(ctx context.Context, author domain.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.authors[author.AuthorID] = author
	return nil
}

func (s *memStore) UpdateAuthor(ctx context.Context, author domain.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.authors[author.AuthorID]; !ok {
		return apperrors.NewNotFoundError("author")
	}
	s.data.authors[author.AuthorID] = author
	return nil
}

func (s *memStore) DeleteAuthor(ctx context.Context, authorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.authors[authorID]; !ok {
		return apperrors.NewNotFoundError("author")
	}
	for _, b := range s.data.books {
		if b.AuthorID == authorID {
			return apperrors.NewConflictError("Cannot delete author with existing books")
		}
	}
	delete(s.data.authors, authorID)
	return nil
}

// --- BookRepositoryFacade ---

func (s *memStore) FindBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return findBook(s.data, bookID)
}

func findBook(d *memData, bookID string) (*domain.Book, error) {
	b, ok := d.books[bookID]
	if !ok {
		return nil, apperrors.NewNotFoundError("book")
	}
	return &b, nil
}

func (s *memStore) FindBooks(ctx context.Context, filter portsrepo.BookFilter) ([]domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Book
	for _, b := range s.data.books {
		if b.IsArchived && !filter.IncludeArchived {
			continue
		}
		if filter.AuthorID != nil && b.AuthorID != *filter.AuthorID {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return page(out, filter.Limit, filter.Offset), nil
}

func (s *memStore) SaveBook(ctx context.Context, book domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.books[book.BookID] = book
	return nil
}

func (s *memStore) UpdateBook(ctx context.Context, book domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.books[book.BookID]; !ok {
		return apperrors.NewNotFoundError("book")
	}
	s.data.books[book.BookID] = book
	return nil
}

func (s *memStore) SetBookArchived(ctx context.Context, bookID string, archived bool, updatedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data.books[bookID]
	if !ok {
		return apperrors.NewNotFoundError("book")
	}
	b.IsArchived = archived
	b.LastUpdatedBy = updatedBy
	s.data.books[bookID] = b
	return nil
}

// --- BookCopyRepositoryFacade ---

func (s *memStore) FindCopyByID(ctx context.Context, copyID string) (*domain.BookCopy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return findCopy(s.data, copyID)
}

func findCopy(d *memData, copyID string) (*domain.BookCopy, error) {
	c, ok := d.copies[copyID]
	if !ok {
		return nil, apperrors.NewNotFoundError("book copy")
	}
	return &c, nil
}

func findCopyByBarcode(d *memData, barcode string) (*domain.BookCopy, error) {
	for _, c := range d.copies {
		if c.Barcode == barcode {
			return &c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("book copy")
}

func (s *memStore) FindCopyByBarcode(ctx context.Context, barcode string) (*domain.BookCopy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return findCopyByBarcode(s.data, barcode)
}

func (s *memStore) FindCopies(ctx context.Context, filter portsrepo.CopyFilter) ([]domain.BookCopy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.BookCopy
	for _, c := range s.data.copies {
		if filter.BookID != nil && c.BookID != *filter.BookID {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Barcode < out[j].Barcode })
	return page(out, filter.Limit, filter.Offset), nil
}

func (s *memStore) FindCopiesWithLoansByBook(ctx context.Context, bookID string) ([]domain.CopyWithLoan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.CopyWithLoan
	for _, c := range s.data.copies {
		if c.BookID != bookID {
			continue
		}
		entry := domain.CopyWithLoan{BookCopy: c}
		for _, t := range s.data.txns {
			if t.BookCopyID == c.CopyID && t.IsActive() {
				t := s.data.decorate(t)
				entry.ActiveTransaction = &t
			}
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Barcode < out[j].Barcode })
	return out, nil
}

func (s *memStore) SaveCopy(ctx context.Context, bookCopy domain.BookCopy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := findCopyByBarcode(s.data, bookCopy.Barcode); err == nil {
		return apperrors.NewConflictError("A copy with this barcode already exists")
	}
	s.data.copies[bookCopy.CopyID] = bookCopy
	return nil
}

// --- TransactionReader ---

func (s *memStore) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return findTransaction(s.data, transactionID)
}

func findTransaction(d *memData, transactionID string) (*domain.Transaction, error) {
	t, ok := d.txns[transactionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("transaction")
	}
	t = d.decorate(t)
	return &t, nil
}

// newestFirst orders by (created_at DESC, id DESC), the keyset order of the real store.
func newestFirst(txns []domain.Transaction) {
	sort.Slice(txns, func(i, j int) bool {
		if !txns[i].CreatedAt.Equal(txns[j].CreatedAt) {
			return txns[i].CreatedAt.After(txns[j].CreatedAt)
		}
		return txns[i].TransactionID > txns[j].TransactionID
	})
}

func (s *memStore) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, *string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cursor *pagination.Cursor
	if filter.NextToken != nil && *filter.NextToken != "" {
		c, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationFailedError("invalid next_token")
		}
		cursor = &c
	}

	var out []domain.Transaction
	for _, t := range s.data.txns {
		if filter.MemberID != nil && t.BorrowedBy != *filter.MemberID {
			continue
		}
		if filter.ActiveOnly && !t.IsActive() {
			continue
		}
		if filter.FineCollected != nil && t.FineCollected != *filter.FineCollected {
			continue
		}
		if filter.OverdueBefore != nil && (!t.IsActive() || !t.CreatedAt.Before(*filter.OverdueBefore)) {
			continue
		}
		if cursor != nil {
			if t.CreatedAt.After(cursor.CreatedAt) {
				continue
			}
			if t.CreatedAt.Equal(cursor.CreatedAt) && t.TransactionID >= cursor.ID {
				continue
			}
		}
		out = append(out, s.data.decorate(t))
	}
	newestFirst(out)

	var next *string
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
		last := out[len(out)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		next = &token
	}
	return out, next, nil
}

func (s *memStore) FindOverdueTransactions(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Transaction
	for _, t := range s.data.txns {
		if t.IsActive() && t.CreatedAt.Before(cutoff) {
			out = append(out, s.data.decorate(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// --- BorrowingRepository ---

func (s *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context, store portsrepo.BorrowingTxStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(ctx, &memTx{data: work, failOn: s.failOn}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.data = work
	return nil
}

// --- LibraryConfigRepository ---

func (s *memStore) GetOrCreateConfig(ctx context.Context, defaults domain.LibraryPolicy) (*domain.LibraryPolicy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.config == nil {
		cfg := defaults
		s.data.config = &cfg
	}
	cfg := *s.data.config
	return &cfg, nil
}

func (s *memStore) UpdateConfig(ctx context.Context, mutate func(current domain.LibraryPolicy) (domain.LibraryPolicy, error)) (*domain.LibraryPolicy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := domain.DefaultLibraryPolicy()
	if s.data.config != nil {
		current = *s.data.config
	}
	next, err := mutate(current)
	if err != nil {
		return nil, err
	}
	s.data.config = &next
	out := next
	return &out, nil
}

// memTx is the BorrowingTxStore handed to a unit. The store mutex is already
// held, so lookups read data directly.
type memTx struct {
	data   *memData
	failOn string
}

func (t *memTx) fail(method string) error {
	if t.failOn == method {
		return errInjected
	}
	return nil
}

func (t *memTx) FindUserByIDForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	return findUser(t.data, userID)
}

func (t *memTx) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return findUser(t.data, userID)
}

func (t *memTx) FindCopyByBarcodeForUpdate(ctx context.Context, barcode string) (*domain.BookCopy, error) {
	return findCopyByBarcode(t.data, barcode)
}

func (t *memTx) FindCopyByIDForUpdate(ctx context.Context, copyID string) (*domain.BookCopy, error) {
	return findCopy(t.data, copyID)
}

func (t *memTx) FindBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	return findBook(t.data, bookID)
}

func (t *memTx) CountBorrowedCopies(ctx context.Context, memberID string) (int, error) {
	return t.data.countBorrowed(memberID), nil
}

func (t *memTx) HasActiveTransactionForBook(ctx context.Context, memberID string, bookID string) (bool, error) {
	for _, txn := range t.data.txns {
		if txn.BorrowedBy != memberID || !txn.IsActive() {
			continue
		}
		if c, ok := t.data.copies[txn.BookCopyID]; ok && c.BookID == bookID {
			return true, nil
		}
	}
	return false, nil
}

func (t *memTx) HasActiveTransactionForCopy(ctx context.Context, copyID string) (bool, error) {
	for _, txn := range t.data.txns {
		if txn.BookCopyID == copyID && txn.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (t *memTx) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return findTransaction(t.data, transactionID)
}

func (t *memTx) FindTransactionByIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return findTransaction(t.data, transactionID)
}

func (t *memTx) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	if err := t.fail("SaveTransaction"); err != nil {
		return err
	}
	for _, existing := range t.data.txns {
		if existing.BookCopyID == txn.BookCopyID && existing.IsActive() {
			return apperrors.NewRuleViolation(apperrors.ErrBookNotAvailable, "Book copy is not available for borrowing")
		}
	}
	t.data.txns[txn.TransactionID] = txn
	return nil
}

func (t *memTx) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	if err := t.fail("UpdateTransaction"); err != nil {
		return err
	}
	if _, ok := t.data.txns[txn.TransactionID]; !ok {
		return apperrors.NewNotFoundError("transaction")
	}
	t.data.txns[txn.TransactionID] = txn
	return nil
}

func (t *memTx) UpdateCopyStatus(ctx context.Context, bookCopy domain.BookCopy, updatedBy string) error {
	if err := t.fail("UpdateCopyStatus"); err != nil {
		return err
	}
	if err := bookCopy.CheckInvariant(); err != nil {
		return err
	}
	bookCopy.LastUpdatedBy = updatedBy
	t.data.copies[bookCopy.CopyID] = bookCopy
	return nil
}
