package repoargs

// UpdateDigitalSettings nil поля не изменяются.
type UpdateDigitalSettings struct {
	IsDigitalAvailable *bool
	HasPreview         *bool
	CoinPrice          *int64
}
