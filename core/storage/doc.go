// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a narrow interface covering what the
// sync pipeline uses: fetching and listing desired-state draft documents and
// writing them back. The abstraction supports both AWS S3 and self-hosted
// MinIO instances and keeps storage easy to mock in unit tests (see
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: verifies access to the target bucket.
//   - GetObject: retrieves a draft document as a stream.
//   - PutObject: uploads a draft document.
//   - ListObjects: lists draft documents under a prefix.
//   - RemoveObject: deletes a draft document.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "catalog")
package storage
