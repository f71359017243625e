// Package receipt turns a user-picked file into a domain.Receipt.
//
// It reads the file, accepts only image content, derives a short preview
// reference from the bytes and wipes the bytes once they are no longer needed.
// Nothing is persisted.
package receipt
