// Package models defines the client-side data shapes exchanged with the
// EstateHub API and kept in local storage.
//
// The API is loose about some field shapes. Location and ImageRef accept
// every shape the server sends and expose one canonical form, and Listing
// and User fold the "_id" and "id" spellings into a single ID.
package models
