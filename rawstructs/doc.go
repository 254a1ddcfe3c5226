// Package rawstructs holds the generated definitions of the ext4 on-disk
// metadata records: the inode descriptor, the block-group descriptor, and
// the superblock. raw.go is rawgen output; edit the specs and regenerate.
package rawstructs

//go:generate go run github.com/alexhholmes/rawgen/cmd/rawgen --specs .. --out raw.go
