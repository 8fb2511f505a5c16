package constants

// TicksPerSecond is the Jellyfin ticks-per-second factor (100ns ticks).
const TicksPerSecond = 10_000_000

// TicksPerMinute is one minute of Jellyfin runtime.
const TicksPerMinute = 60 * TicksPerSecond
