package ynab

// AccountType identifies the kind of account within a budget.
type AccountType string

// Account types accepted by the YNAB API.
const (
	AccountTypeChecking          AccountType = "checking"
	AccountTypeSavings           AccountType = "savings"
	AccountTypeCreditCard        AccountType = "creditCard"
	AccountTypeCash              AccountType = "cash"
	AccountTypeLineOfCredit      AccountType = "lineOfCredit"
	AccountTypeOtherAsset        AccountType = "otherAsset"
	AccountTypeOtherLiability    AccountType = "otherLiability"
	AccountTypePayPal            AccountType = "payPal"
	AccountTypeMerchantAccount   AccountType = "merchantAccount"
	AccountTypeInvestmentAccount AccountType = "investmentAccount"
	AccountTypeMortgage          AccountType = "mortgage"
)

// AccountTypes returns all legal account types in declaration order.
func AccountTypes() []AccountType {
	return []AccountType{
		AccountTypeChecking,
		AccountTypeSavings,
		AccountTypeCreditCard,
		AccountTypeCash,
		AccountTypeLineOfCredit,
		AccountTypeOtherAsset,
		AccountTypeOtherLiability,
		AccountTypePayPal,
		AccountTypeMerchantAccount,
		AccountTypeInvestmentAccount,
		AccountTypeMortgage,
	}
}

// Valid reports whether t is one of the legal account types.
func (t AccountType) Valid() bool {
	for _, v := range AccountTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// ClearedStatus is the reconciliation state of a transaction.
type ClearedStatus string

// Cleared statuses accepted by the YNAB API.
const (
	ClearedStatusCleared    ClearedStatus = "cleared"
	ClearedStatusUncleared  ClearedStatus = "uncleared"
	ClearedStatusReconciled ClearedStatus = "reconciled"
)

// ClearedStatuses returns all legal cleared statuses in declaration order.
func ClearedStatuses() []ClearedStatus {
	return []ClearedStatus{
		ClearedStatusCleared,
		ClearedStatusUncleared,
		ClearedStatusReconciled,
	}
}

// Valid reports whether s is one of the legal cleared statuses.
func (s ClearedStatus) Valid() bool {
	for _, v := range ClearedStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// FlagColor is the color of a transaction flag.
type FlagColor string

// Flag colors accepted by the YNAB API.
const (
	FlagColorRed    FlagColor = "red"
	FlagColorOrange FlagColor = "orange"
	FlagColorYellow FlagColor = "yellow"
	FlagColorGreen  FlagColor = "green"
	FlagColorBlue   FlagColor = "blue"
	FlagColorPurple FlagColor = "purple"
)

// FlagColors returns all legal flag colors in declaration order.
func FlagColors() []FlagColor {
	return []FlagColor{
		FlagColorRed,
		FlagColorOrange,
		FlagColorYellow,
		FlagColorGreen,
		FlagColorBlue,
		FlagColorPurple,
	}
}

// Valid reports whether c is one of the legal flag colors.
func (c FlagColor) Valid() bool {
	for _, v := range FlagColors() {
		if c == v {
			return true
		}
	}
	return false
}
