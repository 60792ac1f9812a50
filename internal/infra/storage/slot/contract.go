package slot

import (
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/dbmetrics"
)

// Executor interfaces are shared with pkg/dbmetrics so that the repository
// works against *sql.DB, a transaction or the metric-wrapped variants.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
