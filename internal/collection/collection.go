// Package collection mutates the ordered sub-collections embedded in the
// platform's documents. Entries are identified purely by their generated
// shortid; payload fields are never part of identity, so two entries with
// identical content are legal.
package collection

// Entry is an element of an embedded sub-collection.
type Entry interface {
	EntryID() string
}

// Append adds a freshly built entry. It never fails: duplicates by content
// are allowed, identity comes from the generated id alone.
func Append[E Entry](list []E, e E) []E {
	return append(list, e)
}

// Patch applies fn to the first entry whose id matches. Returns false with
// the list untouched when no entry matches.
func Patch[E Entry](list []E, id string, fn func(*E)) bool {
	for i := range list {
		if list[i].EntryID() == id {
			fn(&list[i])
			return true
		}
	}
	return false
}

// Remove drops the entry with the given id. Removing an absent id is a
// no-op, so repeated deletes are idempotent.
func Remove[E Entry](list []E, id string) []E {
	for i := range list {
		if list[i].EntryID() == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

// Contains reports whether an entry with the given id exists.
func Contains[E Entry](list []E, id string) bool {
	for i := range list {
		if list[i].EntryID() == id {
			return true
		}
	}
	return false
}
