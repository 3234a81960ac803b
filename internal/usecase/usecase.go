// Package usecase implements the business rules of the directory: the
// super-admin invariant, the whitelist signup gate, and the mentor
// relationship management. Usecases return classified apierror values;
// unexpected store failures pass through and are normalized at the boundary.
package usecase

// pagination converts 1-based page/limit query values into the repository's
// limit/offset form. Non-positive values fall back to the defaults (1, 10).
func pagination(page, limit int) (uint64, uint64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return uint64(limit), uint64(page-1) * uint64(limit)
}
