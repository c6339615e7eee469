// Package address provides the pickup/delivery address entity of a
// transportation request.
//
// An Address stores resolved city and country reference identifiers and a
// geocoded coordinate pair; resolution and geocoding happen before
// construction, so an address without coordinates cannot exist. Addresses
// are owned by a client, attached to a request as pickup or delivery, and
// soft-deleted via a deleted-at marker.
package address
