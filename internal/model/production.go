package model

import "time"

// ProductionSample is the system output for one hourly interval.
// PowerW is the mean power over the hour, so it also equals the energy in Wh.
type ProductionSample struct {
	Time   time.Time `json:"time"`
	PowerW float64   `json:"power_w"`
}

func (s ProductionSample) EnergyWh() float64 { return s.PowerW }
