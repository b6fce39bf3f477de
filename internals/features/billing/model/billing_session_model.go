package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// BillingSessionModel é o registro de auditoria de uma sessão de checkout
// criada no provedor externo. Gravado apenas após sucesso; falha de checkout
// não persiste nada.
type BillingSessionModel struct {
	BillingSessionID uuid.UUID `gorm:"column:billing_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"billing_session_id"`

	BillingSessionAlunoID     *int64 `gorm:"column:billing_session_aluno_id" json:"billing_session_aluno_id,omitempty"`
	BillingSessionInstrutorID int    `gorm:"column:billing_session_instrutor_id;not null" json:"billing_session_instrutor_id"`

	BillingSessionAmountCents int64  `gorm:"column:billing_session_amount_cents;not null;check:billing_session_amount_cents > 0" json:"billing_session_amount_cents"`
	BillingSessionCurrency    string `gorm:"column:billing_session_currency;type:varchar(8);not null;default:'brl'" json:"billing_session_currency"`
	BillingSessionDescription string `gorm:"column:billing_session_description;type:text" json:"billing_session_description"`

	BillingSessionPaymentType    string `gorm:"column:billing_session_payment_type;type:varchar(20);not null" json:"billing_session_payment_type"`
	BillingSessionDataEmissao    string `gorm:"column:billing_session_data_emissao;type:varchar(20);not null" json:"billing_session_data_emissao"`
	BillingSessionDataVencimento string `gorm:"column:billing_session_data_vencimento;type:varchar(20);not null" json:"billing_session_data_vencimento"`

	BillingSessionGateway     string `gorm:"column:billing_session_gateway;type:varchar(30);not null;default:'edge'" json:"billing_session_gateway"`
	BillingSessionProviderID  string `gorm:"column:billing_session_provider_id;type:varchar(160);not null" json:"billing_session_provider_id"`
	BillingSessionCheckoutURL string `gorm:"column:billing_session_checkout_url;type:text;not null" json:"billing_session_checkout_url"`

	// Métodos aceitos no checkout (espelha payment_method_types do provedor)
	BillingSessionMethodTypes pq.StringArray `gorm:"column:billing_session_method_types;type:text[]" json:"billing_session_method_types,omitempty"`

	// Metadados de auditoria (registro do aluno enviado ao provedor etc.)
	BillingSessionMeta datatypes.JSONMap `gorm:"column:billing_session_meta;type:jsonb" json:"billing_session_meta,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (BillingSessionModel) TableName() string { return "billing_sessions" }
