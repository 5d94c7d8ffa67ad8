package domain

// Credential identifies one Ozon Performance account. The rows come from
// the account_list keys table and are read-only for the duration of a run.
type Credential struct {
	AccountID    int64
	ClientID     string
	ClientSecret string
}

// Skip reports whether the account must be ignored by the dispatcher.
// An empty client id is the agreed "do not collect" marker in account_list.
func (c Credential) Skip() bool {
	return c.ClientID == ""
}
