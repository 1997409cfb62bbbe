package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	if c.Chat.FreeMessageLimit < 0 {
		return fmt.Errorf("chat.free_message_limit must be >= 0 (got %d)", c.Chat.FreeMessageLimit)
	}
	if c.Chat.ConversationLimit < 0 {
		return fmt.Errorf("chat.conversation_limit must be >= 0 (got %d)", c.Chat.ConversationLimit)
	}
	if c.Chat.MaxMessageLength <= 0 {
		return fmt.Errorf("chat.max_message_length must be > 0 (got %d)", c.Chat.MaxMessageLength)
	}

	// Payment credentials come as a pair or not at all.
	if (c.Payment.KeyID == "") != (c.Payment.KeySecret == "") {
		return fmt.Errorf("payment.key_id and payment.key_secret must both be set or both be empty")
	}

	return nil
}
