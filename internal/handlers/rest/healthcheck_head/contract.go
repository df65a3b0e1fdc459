//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import "context"

// Dependency is anything the instance cannot serve without, such as the
// session store pool.
type Dependency interface {
	Ping(ctx context.Context) error
}
