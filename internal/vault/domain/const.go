package domain

const (
	// KeyEnvName is the environment variable holding the credential URI list.
	KeyEnvName = "DOTENV_KEY"

	// VaultEntryPrefix prefixes per-environment ciphertext entries in the vault file.
	VaultEntryPrefix = "DOTENV_VAULT_"

	// VaultFileName is the encrypted vault file looked up in the working directory.
	VaultFileName = ".env.vault"

	// EnvFileName is the plaintext fallback file looked up in the working directory.
	EnvFileName = ".env"

	// CredentialScheme is the required URI scheme for credential URIs.
	CredentialScheme = "dotenv"

	// KeyHexLength is the number of trailing characters of the credential key
	// that hold the hex-encoded AES-256 key.
	KeyHexLength = 64

	// NonceSize is the AES-GCM nonce length prefixed to every vault ciphertext.
	NonceSize = 12
)
