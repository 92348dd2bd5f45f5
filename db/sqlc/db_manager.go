package sqlc

import "time"

// QuerierCtxTimeout bounds every analytics query; a slow database must not
// hold up the next move.
const QuerierCtxTimeout = 10 * time.Second

// DbManager groups the managers built on one Querier. Match analytics is the
// only table a console match writes to.
type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{Analytics: NewAnalyticsManager(queries)}
}
