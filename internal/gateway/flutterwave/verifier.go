package flutterwave

import "crypto/subtle"

// WebhookVerifier сверяет заголовок verif-hash с секретом из настроек
// аккаунта провайдера.
type WebhookVerifier struct {
	secretHash string
}

func NewWebhookVerifier(secretHash string) *WebhookVerifier {
	return &WebhookVerifier{
		secretHash: secretHash,
	}
}

func (v *WebhookVerifier) Verify(signature string) bool {
	if v.secretHash == "" || signature == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(v.secretHash), []byte(signature)) == 1
}
