package ports

// ConfirmationSurface is the trusted local input surface asking the user to
// approve or reject an export. The call blocks until the user decides.
type ConfirmationSurface interface {
	// ConfirmPubkeyExport shows the derivation path and the serialized
	// public key and returns the user's decision. The unsafe flag makes the
	// surface warn that the path is non-standard.
	ConfirmPubkeyExport(pathText string, unsafe bool, pubkey string) bool
}
