package models

import "time"

// SensorDevice is a row of the sensor_devices table. Newer rows keep the
// node id, name, species, position and status inside the encrypted Payload
// and leave the plaintext columns NULL.
type SensorDevice struct {
	ID         int64
	NodeID     *string
	DeviceName *string
	SpeciesID  *int64
	Latitude   *float64
	Longitude  *float64
	IsActive   *bool
	Payload    *string
	CreatedAt  time.Time
}

// TableName returns the name of the database table
// associated with the SensorDevice model.
func (d SensorDevice) TableName() string {
	return "sensor_devices"
}

// SensorReading is a row of the sensor_readings table. RecordedAt is always
// stored in plaintext so readings can be ordered; a payload copy of the
// timestamp takes precedence when present.
type SensorReading struct {
	ID             int64
	DeviceID       int64
	Temperature    *float64
	Humidity       *float64
	SoilMoisture   *float64
	MotionDetected *bool
	Status         *string
	AlertGenerated *bool
	Latitude       *float64
	Longitude      *float64
	RecordedAt     time.Time
	Payload        *string
}

// TableName returns the name of the database table
// associated with the SensorReading model.
func (r SensorReading) TableName() string {
	return "sensor_readings"
}

// SensorDeviceView is the API representation of a device with its
// readings, newest first.
type SensorDeviceView struct {
	ID        int64               `json:"id"`
	NodeID    *string             `json:"node_id"`
	Name      *string             `json:"device_name"`
	SpeciesID *int64              `json:"species_id"`
	Location  *Location           `json:"location"`
	IsActive  bool                `json:"is_active"`
	CreatedAt time.Time           `json:"created_at"`
	Readings  []SensorReadingView `json:"readings"`
}

// SensorReadingView is the API representation of one reading.
type SensorReadingView struct {
	ID             int64     `json:"id"`
	DeviceID       int64     `json:"device_id"`
	Temperature    *float64  `json:"temperature"`
	Humidity       *float64  `json:"humidity"`
	SoilMoisture   *float64  `json:"soil_moisture"`
	MotionDetected *bool     `json:"motion_detected"`
	Status         *string   `json:"reading_status"`
	AlertGenerated *bool     `json:"alert_generated"`
	Location       *Location `json:"location"`
	RecordedAt     time.Time `json:"reading_timestamp"`
}
