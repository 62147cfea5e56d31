package bloomstore

type Config struct {
	// Prefix is prepended to every blob path. It is typically a tenant or
	// service scoped directory such as "v1/bloom/tenant/1234". May be empty.
	Prefix string

	// Overwrite allows Save to replace an existing filter. When false, Save
	// asks the store to fail if a blob already exists at the path, so
	// concurrent writers can not silently replace each other.
	Overwrite bool

	// HashName selects the seeded hash, see bloom.HashByName. It is recorded
	// on save and checked on load, because the filter encoding itself does
	// not identify the hash.
	HashName string
}
