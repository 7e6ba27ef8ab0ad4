package commission

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DirectRefCode marks a checkout that was not referred by an affiliate.
const DirectRefCode = "direct"

const (
	MetaRefCode         = "ref_code"
	MetaUserID          = "user_id"
	MetaPayoutAccount   = "affiliate_account"
	MetaCommissionRate  = "commission_rate"
	MetaAffiliateAmount = "affiliate_amount"
	MetaPlanType        = "plan_type"
	MetaIdempotencyKey  = "commission_key"
	MetaInvoiceID       = "invoice_id"
)

// Terms are the commission conditions frozen into processor metadata at checkout time.
type Terms struct {
	RefCode         string
	UserID          string
	PlanType        string
	PayoutAccountID string
	Rate            decimal.Decimal
	AffiliateAmount int64
}

func DirectTerms(userID, planType string) Terms {
	return Terms{RefCode: DirectRefCode, UserID: userID, PlanType: planType}
}

func (t Terms) IsReferral() bool {
	return t.RefCode != "" && t.RefCode != DirectRefCode && t.PayoutAccountID != ""
}

func (t Terms) Metadata() map[string]string {
	refCode := t.RefCode
	if refCode == "" {
		refCode = DirectRefCode
	}
	md := map[string]string{
		MetaRefCode: refCode,
		MetaUserID:  t.UserID,
	}
	if t.PlanType != "" {
		md[MetaPlanType] = t.PlanType
	}
	if t.IsReferral() {
		md[MetaPayoutAccount] = t.PayoutAccountID
		md[MetaCommissionRate] = t.Rate.String()
		md[MetaAffiliateAmount] = strconv.FormatInt(t.AffiliateAmount, 10)
	}
	return md
}

// TermsFromMetadata is lenient: unknown or malformed numeric values read as zero.
func TermsFromMetadata(md map[string]string) Terms {
	t := Terms{
		RefCode:         strings.TrimSpace(md[MetaRefCode]),
		UserID:          strings.TrimSpace(md[MetaUserID]),
		PlanType:        strings.TrimSpace(md[MetaPlanType]),
		PayoutAccountID: strings.TrimSpace(md[MetaPayoutAccount]),
	}
	if t.RefCode == "" {
		t.RefCode = DirectRefCode
	}
	if rate, err := decimal.NewFromString(md[MetaCommissionRate]); err == nil {
		t.Rate = rate
	}
	if amount, err := strconv.ParseInt(md[MetaAffiliateAmount], 10, 64); err == nil {
		t.AffiliateAmount = amount
	}
	return t
}
