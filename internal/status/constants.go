// internal/status/constants.go
package status

// Station Status Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerStation is the fixed number of logical slots per monitor.
const SlotsPerStation = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the API health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the last error code.
const SlotLastErrorCode = 1

// SlotSecondsOffline holds the duration (in seconds) the API has been offline.
const SlotSecondsOffline = 2

// SlotDialHzHigh and SlotDialHzLow hold the last dial frequency set, in Hz,
// as a big-endian 32-bit pair.
const SlotDialHzHigh = 3
const SlotDialHzLow = 4

// SlotMessagesReceived counts handled incoming messages (saturating).
const SlotMessagesReceived = 5

// ---- RESERVED RANGE ----

// Slots 6-10 are reserved for future use.
const SlotReservedStart = 6
const SlotReservedEnd = 10

// ---- STATION NAME ----

// SlotStationNameStart is the first slot used for the station name.
// Station name is always placed at the END of the status block.
const SlotStationNameStart = 11

// SlotStationNameSlots is the number of slots reserved for the station name.
const SlotStationNameSlots = 8

// SlotStationNameEnd is the last slot used for the station name (inclusive).
const SlotStationNameEnd = SlotStationNameStart + SlotStationNameSlots - 1

// ---- LIMITS ----

// StationNameMaxChars is the maximum number of ASCII characters stored for station name.
const StationNameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown represents boot state, before the first readiness check.
const HealthUnknown uint16 = 0

// HealthOK means the JS8Call API is online.
const HealthOK uint16 = 1

// HealthError means the JS8Call API is offline.
const HealthError uint16 = 2

// ---- ERROR CODES ----

// ErrorNone is written while healthy.
const ErrorNone uint16 = 0

// ErrorAPIOffline is written while the API connection is down.
const ErrorAPIOffline uint16 = 1
