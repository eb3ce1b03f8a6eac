package nft

// StorageMechanism selects how off-chain bytes (images, metadata documents)
// are turned into publicly reachable URLs.
type StorageMechanism string

const (
	StoragePinata      StorageMechanism = "pinata"
	StorageIPFS        StorageMechanism = "ipfs"
	StorageS3          StorageMechanism = "s3"
	StorageRecordStore StorageMechanism = "record-store"

	// StorageExternalURL means the caller already hosts the content and
	// supplies ready URLs, nothing is uploaded.
	StorageExternalURL StorageMechanism = "external-url"
)

func (s StorageMechanism) String() string {
	return string(s)
}
