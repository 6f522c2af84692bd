package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/syedfiras/student-attendance-app/core"
)

// DataKey is the fixed document store key under which the whole
// attendance document is persisted.
const DataKey = "ATTENDANCE_DATA_V1"

var (
	// errors
	ErrNoDocument      = errors.New("attendance document not found")
	ErrClassNotFound   = errors.New("class not found")
	ErrStudentNotFound = errors.New("student not found")

	// newID is mockable in tests.
	newID = func(prefix string) string { return prefix + uuid.New().String() }
)

type (
	// DocumentStore persists a single serialized blob by key.
	// Get returns ErrNoDocument when the key is absent.
	DocumentStore interface {
		Get(ctx context.Context, key string) ([]byte, error)
		Set(ctx context.Context, key string, value []byte) error
	}

	Service struct {
		store DocumentStore
		log   core.Logger

		// mu serializes all read-modify-write cycles: two overlapping
		// mutations on the shared document would otherwise lose the
		// first writer's update.
		mu sync.Mutex
	}
)

func NewService(store DocumentStore, log core.Logger) *Service {
	return &Service{store: store, log: log}
}

// load reads the persisted document. A missing key, a parse failure or
// a malformed top-level field never fail the caller: each of the three
// sequences is independently defaulted to empty.
func (svc *Service) load(ctx context.Context) *Document {
	doc := &Document{
		Classes:    []ClassItem{},
		Students:   []Student{},
		Attendance: []Entry{},
	}

	raw, err := svc.store.Get(ctx, DataKey)
	if err != nil {
		if err != ErrNoDocument {
			svc.log.Warn("loading attendance document", err)
		}
		return doc
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		svc.log.Warn("parsing attendance document", err)
		return doc
	}
	if msg, ok := fields["classes"]; ok {
		var classes []ClassItem
		if err := json.Unmarshal(msg, &classes); err == nil && classes != nil {
			doc.Classes = classes
		}
	}
	if msg, ok := fields["students"]; ok {
		var students []Student
		if err := json.Unmarshal(msg, &students); err == nil && students != nil {
			doc.Students = students
		}
	}
	if msg, ok := fields["attendance"]; ok {
		var entries []Entry
		if err := json.Unmarshal(msg, &entries); err == nil && entries != nil {
			doc.Attendance = entries
		}
	}
	return doc
}

// save persists the whole document. Write failures are logged and
// swallowed: callers must not assume the write durably happened.
func (svc *Service) save(ctx context.Context, doc *Document) {
	raw, err := json.Marshal(doc)
	if err != nil {
		svc.log.Error("serializing attendance document", err)
		return
	}
	if err := svc.store.Set(ctx, DataKey, raw); err != nil {
		svc.log.Error("saving attendance document", err)
	}
}

// Classes returns all classes in stable document order.
func (svc *Service) Classes(ctx context.Context) ([]ClassItem, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.load(ctx).Classes, nil
}

func (svc *Service) CreateClass(ctx context.Context, nc NewClass) (ClassItem, error) {
	if err := nc.Validate(); err != nil {
		return ClassItem{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	doc := svc.load(ctx)
	cls := ClassItem{
		ID:      newID("class_"),
		Name:    nc.Name,
		Section: nc.Section,
	}
	doc.Classes = append(doc.Classes, cls)
	svc.save(ctx, doc)
	return cls, nil
}

func (svc *Service) UpdateClass(ctx context.Context, id string, uc UpdateClass) (ClassItem, error) {
	if err := uc.Validate(); err != nil {
		return ClassItem{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	doc := svc.load(ctx)
	for i, cls := range doc.Classes {
		if cls.ID == id {
			cls.Name = uc.Name
			cls.Section = uc.Section
			doc.Classes[i] = cls
			svc.save(ctx, doc)
			return cls, nil
		}
	}
	return ClassItem{}, ErrClassNotFound
}

// DeleteClass removes the class and cascades: all its students and all
// its attendance entries go with it. Destructive and irreversible; the
// caller is responsible for confirming intent.
func (svc *Service) DeleteClass(ctx context.Context, id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	doc := svc.load(ctx)

	classes := doc.Classes[:0]
	for _, cls := range doc.Classes {
		if cls.ID != id {
			classes = append(classes, cls)
		}
	}
	doc.Classes = classes

	students := doc.Students[:0]
	for _, stu := range doc.Students {
		if stu.ClassID != id {
			students = append(students, stu)
		}
	}
	doc.Students = students

	entries := doc.Attendance[:0]
	for _, ent := range doc.Attendance {
		if ent.ClassID != id {
			entries = append(entries, ent)
		}
	}
	doc.Attendance = entries

	svc.save(ctx, doc)
	return nil
}

// StudentsByClass returns the students enrolled in classID, in stable
// document order. Orphaned students never match an existing class id.
func (svc *Service) StudentsByClass(ctx context.Context, classID string) ([]Student, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	doc := svc.load(ctx)
	students := make([]Student, 0, len(doc.Students))
	for _, stu := range doc.Students {
		if stu.ClassID == classID {
			students = append(students, stu)
		}
	}
	return students, nil
}

func (svc *Service) CreateStudent(ctx context.Context, ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	doc := svc.load(ctx)
	stu := Student{
		ID:      newID("stu_"),
		Name:    ns.Name,
		RollNo:  ns.RollNo,
		USN:     ns.USN,
		ClassID: ns.ClassID,
	}
	doc.Students = append(doc.Students, stu)
	svc.save(ctx, doc)
	return stu, nil
}

func (svc *Service) UpdateStudent(ctx context.Context, id string, us UpdateStudent) (Student, error) {
	if err := us.Validate(); err != nil {
		return Student{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	doc := svc.load(ctx)
	for i, stu := range doc.Students {
		if stu.ID == id {
			stu.Name = us.Name
			stu.RollNo = us.RollNo
			stu.USN = us.USN
			doc.Students[i] = stu
			svc.save(ctx, doc)
			return stu, nil
		}
	}
	return Student{}, ErrStudentNotFound
}

// DeleteStudent removes the student and strips their key from every
// attendance entry's records. Entries themselves are kept, even when
// their records empty out, and the cleanup runs even if the student's
// class is already gone.
func (svc *Service) DeleteStudent(ctx context.Context, id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	doc := svc.load(ctx)

	students := doc.Students[:0]
	for _, stu := range doc.Students {
		if stu.ID != id {
			students = append(students, stu)
		}
	}
	doc.Students = students

	for i := range doc.Attendance {
		delete(doc.Attendance[i].Records, id)
	}

	svc.save(ctx, doc)
	return nil
}

// RecordsForDate returns the presence marks of the students currently
// enrolled in classID for the given date. Without a recorded entry,
// every student defaults to present; with one, students missing from
// its records read as absent.
func (svc *Service) RecordsForDate(ctx context.Context, classID, date string) (RecordMap, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	doc := svc.load(ctx)
	existing := findEntry(doc, classID, date)

	records := make(RecordMap)
	for _, stu := range doc.Students {
		if stu.ClassID != classID {
			continue
		}
		if existing != nil {
			records[stu.ID] = existing.Records[stu.ID]
		} else {
			records[stu.ID] = true
		}
	}
	return records, nil
}

// SaveRecords upserts the unique entry for (classID, date), fully
// replacing its records. Lookup-by-key-then-replace-or-insert: a
// second entry for the same pair is never created.
func (svc *Service) SaveRecords(ctx context.Context, classID, date string, records RecordMap) error {
	if records == nil {
		records = make(RecordMap)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	doc := svc.load(ctx)
	if existing := findEntry(doc, classID, date); existing != nil {
		existing.Records = records
	} else {
		doc.Attendance = append(doc.Attendance, Entry{
			ID:      newID("att_"),
			ClassID: classID,
			Date:    date,
			Records: records,
		})
	}
	svc.save(ctx, doc)
	return nil
}

func findEntry(doc *Document, classID, date string) *Entry {
	for i := range doc.Attendance {
		if doc.Attendance[i].ClassID == classID && doc.Attendance[i].Date == date {
			return &doc.Attendance[i]
		}
	}
	return nil
}
