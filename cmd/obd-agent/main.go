// Command obd-agent connects to an ELM327 adapter over serial, polls the
// common PID catalog, decodes the vehicle's VIN against the reference
// database, and publishes telemetry and DTCs over MQTT while accepting
// remote commands on a command topic.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/provrb/obdium/common"
	"github.com/provrb/obdium/internal/obd"
	"github.com/provrb/obdium/internal/scalar"
	"github.com/provrb/obdium/internal/vin"
	"github.com/provrb/obdium/pkg/dashboard"
	"github.com/provrb/obdium/pkg/mqtt"
	"github.com/provrb/obdium/pkg/storage"
)

func main() {
	port := flag.String("port", "/dev/ttyUSB0", "serial port the ELM327 adapter is attached to")
	baud := flag.Int("baud", 38400, "serial baud rate")
	vinStr := flag.String("vin", "", "vehicle VIN; when set, decoded attributes are logged once at startup")
	vinDB := flag.String("vin-db", "", "path to the vPIC reference sqlite database; empty disables VIN decoding")
	attrCachePath := flag.String("attr-cache", "obdium-attrs.db", "path to the VIN attribute cache (bbolt)")
	broker := flag.String("broker", mqtt.DefaultBroker, "MQTT broker URL")
	topic := flag.String("topic", mqtt.DefaultTopic, "MQTT telemetry topic")
	commandTopic := flag.String("command-topic", "obd/command", "MQTT command topic")
	interval := flag.Duration("interval", mqtt.DefaultUpdateInterval, "telemetry publish interval")
	dashboardAddr := flag.String("dashboard-addr", ":8089", "address the dashboard websocket server listens on")
	journalPath := flag.String("journal", "", "journal file for --record or --replay")
	record := flag.Bool("record", false, "record every request/response round trip to --journal")
	replay := flag.Bool("replay", false, "serve responses from --journal instead of the adapter")
	flag.Parse()

	session := obd.New()
	session.SetPreferences(scalar.DefaultPreferences())

	if *replay {
		if err := session.Replay(true, *journalPath); err != nil {
			log.Fatalf("obd-agent: open replay journal: %v", err)
		}
	} else {
		if err := session.Connect(*port, *baud); err != nil {
			log.Fatalf("obd-agent: connect %s: %v", *port, err)
		}
		defer session.Disconnect()

		if *record {
			if err := session.Record(*journalPath); err != nil {
				log.Fatalf("obd-agent: open record journal: %v", err)
			}
		}
	}
	log.Printf("obd-agent: session ready, adapter reports %q", session.Version())

	resolvedVIN := *vinStr
	if resolvedVIN == "" && session.Connected() {
		if readVIN, err := session.ReadVIN(); err != nil {
			log.Printf("obd-agent: read vin from vehicle: %v", err)
		} else {
			resolvedVIN = readVIN
		}
	}
	if resolvedVIN != "" && *vinDB != "" {
		decodeVIN(resolvedVIN, *vinDB, *attrCachePath)
	}

	hub := dashboard.NewHub()
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	dashboardServer := &http.Server{Addr: *dashboardAddr, Handler: mux}
	go func() {
		if err := dashboardServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("obd-agent: dashboard server: %v", err)
		}
	}()
	defer dashboardServer.Close()

	mq := mqtt.NewClient(mqtt.Config{
		Broker:         *broker,
		ClientID:       mqtt.DefaultClientID,
		Topic:          *topic,
		CommandTopic:   *commandTopic,
		UpdateInterval: *interval,
	}, func() json.Marshaler {
		snapshot := newSnapshot(session)
		hub.Broadcast(snapshot)
		return snapshot
	}, func(cmd common.ServerCommand) error {
		return handleCommand(session, cmd)
	})

	if err := mq.Connect(); err != nil {
		log.Fatalf("obd-agent: connect to broker %s: %v", *broker, err)
	}
	defer mq.Disconnect()
	mq.StartPublishing()
	defer mq.StopPublishing()

	dtcStop := make(chan struct{})
	if dtcDB, err := storage.OpenDB(storage.DTCDBPath); err != nil {
		log.Printf("obd-agent: open dtc dedup store: %v", err)
	} else {
		defer dtcDB.Close()
		go publishNewDTCs(session, mq, dtcDB, *interval, dtcStop)
		defer close(dtcStop)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("obd-agent: shutting down")
}

// publishNewDTCs polls the trouble-code list every interval and publishes
// only codes not already recorded in dtcDB, so an unchanged fault does not
// republish on every tick.
func publishNewDTCs(session *obd.Session, mq *mqtt.Client, dtcDB *bolt.DB, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			for _, tc := range session.GetTroubleCodes() {
				isNew, err := storage.IsNew(dtcDB, tc.DTC)
				if err != nil {
					log.Printf("obd-agent: dtc dedup check %s: %v", tc.DTC, err)
					continue
				}
				if !isNew {
					continue
				}
				mq.PublishDTC(common.DTCCode{
					DTC:       tc.DTC,
					Category:  tc.Category.String(),
					Permanent: tc.Permanent,
					Timestamp: time.Now().Unix(),
				})
			}
		}
	}
}

// decodeVIN resolves and logs the vehicle's decoded attributes. A missing
// or unreachable vinDB still yields checksum/WMI/key results; it just
// skips the database-backed attributes.
func decodeVIN(raw, dbPath, cachePath string) {
	v, err := vin.NewWithDatabase(raw, dbPath)
	if err != nil {
		log.Printf("obd-agent: vin %q rejected: %v", raw, err)
		return
	}

	if cachePath != "" {
		db, err := storage.OpenAttributeDB(cachePath)
		if err != nil {
			log.Printf("obd-agent: open attribute cache %s: %v", cachePath, err)
		} else {
			v.SetAttributeCache(db)
		}
	}

	attrs := v.ResolveAttributes()
	log.Printf("obd-agent: vin %s -> make=%s model=%s year=%d type=%s",
		raw, attrs.Make, attrs.Model, attrs.ModelYear, attrs.VehicleType)
}

func handleCommand(session *obd.Session, cmd common.ServerCommand) error {
	switch cmd.Type {
	case common.CommandTypeClearDTCs:
		return session.ClearTroubleCodes()
	case common.CommandTypeSetFreezeFrame:
		state := cmd.Params.FreezeFrame != nil && *cmd.Params.FreezeFrame
		session.SetFreezeFrame(state)
		return nil
	case common.CommandTypeStartRecording:
		path := "obdium-recording.json"
		if cmd.Params.JournalPath != nil {
			path = *cmd.Params.JournalPath
		}
		return session.Record(path)
	case common.CommandTypeStopRecording:
		session.StopRecording()
		return nil
	default:
		log.Printf("obd-agent: unknown command type %q", cmd.Type)
		return nil
	}
}

// telemetrySnapshot is a single poll of the common PID catalog, flattened
// to plain JSON-friendly fields since scalar.Scalar has no Marshaler of
// its own.
type telemetrySnapshot struct {
	Timestamp          int64   `json:"timestamp"`
	RPM                float64 `json:"rpm"`
	VehicleSpeed       float64 `json:"vehicle_speed"`
	CoolantTemp        float64 `json:"coolant_temp"`
	EngineLoad         float64 `json:"engine_load"`
	IntakeAirTemp      float64 `json:"intake_air_temp"`
	ThrottlePosition   float64 `json:"throttle_position"`
	ControlModuleVolts float64 `json:"control_module_voltage"`
	MIL                bool    `json:"mil_on"`
}

func newSnapshot(session *obd.Session) telemetrySnapshot {
	return telemetrySnapshot{
		Timestamp:          time.Now().Unix(),
		RPM:                session.RPM().Value,
		VehicleSpeed:       session.VehicleSpeed().Value,
		CoolantTemp:        session.CoolantTemp().Value,
		EngineLoad:         session.EngineLoad().Value,
		IntakeAirTemp:      session.IntakeAirTemp().Value,
		ThrottlePosition:   session.ThrottlePosition().Value,
		ControlModuleVolts: session.ControlModuleVoltage().Value,
		MIL:                session.CheckEngineLight(),
	}
}

// MarshalJSON satisfies json.Marshaler via a plain type alias, avoiding
// recursive marshaling through the method itself.
func (t telemetrySnapshot) MarshalJSON() ([]byte, error) {
	type alias telemetrySnapshot
	return json.Marshal(alias(t))
}
