package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"chat-relay/domain"
	relayerrors "chat-relay/errors"
)

// contactsKey holds the whole contact collection as one durable blob,
// rewritten wholesale on every change.
const contactsKey = "contacts"

// ContactRepository keeps the contact list in memory and mirrors every
// change synchronously to a single durable record. The in-memory state
// stays authoritative even when a write fails; the failure is returned so
// the caller can log and alert.
type ContactRepository struct {
	db  *badger.DB
	log *slog.Logger

	mu       sync.Mutex
	contacts []domain.Contact
}

func NewContactRepository(db *badger.DB, log *slog.Logger) (*ContactRepository, error) {
	r := &ContactRepository{db: db, log: log}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ContactRepository) load() error {
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(contactsKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &r.contacts)
		})
	})
	if err != nil {
		return fmt.Errorf("%w: loading contacts: %v", relayerrors.ErrPersistence, err)
	}
	return nil
}

// FindByAddress returns the contact last seen on the given address.
func (r *ContactRepository) FindByAddress(address string) (domain.Contact, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findByAddressLocked(address)
}

func (r *ContactRepository) findByAddressLocked(address string) (domain.Contact, bool) {
	if address == "" {
		return domain.Contact{}, false
	}
	for _, c := range r.contacts {
		if c.LastKnownAddress == address {
			return c, true
		}
	}
	return domain.Contact{}, false
}

// GetOrCreate returns the existing contact for the address or creates one
// with an empty alias and persists it. Idempotent under repeated calls
// with the same address. On a persistence failure the new contact is
// still returned, together with the error.
func (r *ContactRepository) GetOrCreate(address string) (domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.findByAddressLocked(address); ok {
		return existing, nil
	}

	contact := domain.NewContact(address)
	r.contacts = append(r.contacts, contact)
	return contact, r.persistLocked()
}

// Save upserts the contact by identity and synchronously rewrites the
// durable collection.
func (r *ContactRepository) Save(contact domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := false
	for i, existing := range r.contacts {
		if existing.ID == contact.ID {
			r.contacts[i] = contact
			replaced = true
			break
		}
	}
	if !replaced {
		r.contacts = append(r.contacts, contact)
	}
	return r.persistLocked()
}

// All returns a snapshot copy of the contact list.
func (r *ContactRepository) All() []domain.Contact {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]domain.Contact, len(r.contacts))
	copy(snapshot, r.contacts)
	return snapshot
}

func (r *ContactRepository) persistLocked() error {
	raw, err := json.Marshal(r.contacts)
	if err != nil {
		return fmt.Errorf("%w: encoding contacts: %v", relayerrors.ErrPersistence, err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(contactsKey), raw)
	})
	if err != nil {
		return fmt.Errorf("%w: writing contacts: %v", relayerrors.ErrPersistence, err)
	}
	return nil
}
