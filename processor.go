package sensitive

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// Boundary tags understood by Processor.
const (
	tagReceiveHash  = "receive.hash"
	tagLoadDecrypt  = "load.decrypt"
	tagStoreEncrypt = "store.encrypt"
	tagSendMask     = "send.mask"
	tagSendRedact   = "send.redact"
)

var boundaryTags = []string{
	tagReceiveHash,
	tagLoadDecrypt,
	tagStoreEncrypt,
	tagSendMask,
	tagSendRedact,
}

func init() {
	for _, tag := range boundaryTags {
		sentinel.Tag(tag)
	}
}

// Processor marshals records of type T and transforms their tagged fields as
// they cross a boundary. Receive and Load are ingress; Store and Send are
// egress.
//
// Processors are safe for concurrent use. SetEncryptor, SetHasher and
// SetMasker may be called at any time, but validation of required
// capabilities runs once, on the first operation.
type Processor[T Cloner[T]] struct {
	codec Codec

	mu         sync.RWMutex
	encryptors map[EncryptAlgo]Encryptor
	hashers    map[HashAlgo]Hasher
	maskers    map[MaskType]Masker

	validateOnce sync.Once
	validateErr  error

	plans    *typeFieldPlans
	typeName string
}

// typeFieldPlans holds every tagged field of a type, grouped by action.
// Immutable once built.
type typeFieldPlans struct {
	typeName      string
	hashFields    []processorFieldPlan
	decryptFields []processorFieldPlan
	encryptFields []processorFieldPlan
	maskFields    []processorFieldPlan
	redactFields  []processorFieldPlan
}

// processorFieldPlan describes how to reach and transform a single field.
type processorFieldPlan struct {
	index      []int  // reflect.Value.FieldByIndex access path
	name       string // dotted field path for errors
	tagVal     string // tag value (e.g., "aesgcm", "bcrypt", "ssn", "[REDACTED]")
	isBytes    bool   // []byte
	isSlice    bool   // []string
	isMap      bool   // map[K]string
	ptrIndices []int  // positions in index that need a pointer dereference
}

// ProcessorOption configures a Processor at construction.
type ProcessorOption func(*processorOptions)

type processorOptions struct {
	encryptors map[EncryptAlgo]Encryptor
	hashers    map[HashAlgo]Hasher
	maskers    map[MaskType]Masker
}

// WithEncryptor registers enc for algo.
func WithEncryptor(algo EncryptAlgo, enc Encryptor) ProcessorOption {
	return func(o *processorOptions) {
		o.encryptors[algo] = enc
	}
}

// WithHasher registers h for algo, replacing any builtin.
func WithHasher(algo HashAlgo, h Hasher) ProcessorOption {
	return func(o *processorOptions) {
		o.hashers[algo] = h
	}
}

// WithMasker registers m for mt, replacing any builtin.
func WithMasker(mt MaskType, m Masker) ProcessorOption {
	return func(o *processorOptions) {
		o.maskers[mt] = m
	}
}

var planCache sync.Map // reflect.Type -> *typeFieldPlans

// getOrBuildPlans returns the cached field plans for T, building them on
// first use.
func getOrBuildPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	typ := reflect.TypeFor[T]()
	if cached, ok := planCache.Load(typ); ok {
		return cached.(*typeFieldPlans), nil
	}

	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}

	actual, _ := planCache.LoadOrStore(typ, plans)
	return actual.(*typeFieldPlans), nil
}

// NewProcessor creates a Processor for T using codec.
//
// Builtin hashers and maskers are registered automatically. Fields tagged
// store.encrypt or load.decrypt need an encryptor, usually a *FieldCodec
// registered for EncryptAESGCM.
func NewProcessor[T Cloner[T]](codec Codec, opts ...ProcessorOption) (*Processor[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	o := &processorOptions{
		encryptors: make(map[EncryptAlgo]Encryptor),
		hashers:    builtinHashers(),
		maskers:    builtinMaskers(),
	}
	for _, opt := range opts {
		opt(o)
	}

	p := &Processor[T]{
		codec:      codec,
		encryptors: o.encryptors,
		hashers:    o.hashers,
		maskers:    o.maskers,
		plans:      plans,
		typeName:   plans.typeName,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plans.typeName)
	return p, nil
}

// SetEncryptor registers an encryptor for the given algorithm.
// Returns the processor for chaining.
func (p *Processor[T]) SetEncryptor(algo EncryptAlgo, enc Encryptor) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.encryptors[algo] = enc
	return p
}

// SetHasher registers a hasher for the given algorithm.
// Returns the processor for chaining.
func (p *Processor[T]) SetHasher(algo HashAlgo, h Hasher) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hashers[algo] = h
	return p
}

// SetMasker registers a masker for the given type.
// Returns the processor for chaining.
func (p *Processor[T]) SetMasker(mt MaskType, m Masker) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maskers[mt] = m
	return p
}

// ContentType returns the content type of the underlying codec.
func (p *Processor[T]) ContentType() string {
	return p.codec.ContentType()
}

// Validate checks that every tagged field has its capability registered.
// It also runs on the first operation; calling it at startup surfaces
// configuration errors early.
func (p *Processor[T]) Validate() error {
	return p.ensureValidated()
}

func (p *Processor[T]) ensureValidated() error {
	p.validateOnce.Do(func() {
		p.mu.RLock()
		defer p.mu.RUnlock()
		p.validateErr = p.validateCapabilities()
	})
	return p.validateErr
}

// buildFieldPlans scans T's struct tags into field plans.
func buildFieldPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	spec := sentinel.Scan[T]()
	plans := &typeFieldPlans{typeName: spec.TypeName}

	if err := buildFieldPlansRecursive(plans, spec, nil, nil, ""); err != nil {
		return nil, err
	}
	return plans, nil
}

func buildFieldPlansRecursive(plans *typeFieldPlans, spec sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				if err := buildFieldPlansRecursive(plans, *nested, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			if nested := scanNestedType(field.ReflectType.Elem()); nested != nil {
				nestedPtrs := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := buildFieldPlansRecursive(plans, *nested, fullIndex, nestedPtrs, fullName); err != nil {
					return err
				}
			}
			continue
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isBytes := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
		isStringSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isStringMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String
		if !isString && !isBytes && !isStringSlice && !isStringMap {
			if hasBoundaryTag(field.Tags) {
				return newConfigError(ErrInvalidTag, rt.String(), fullName)
			}
			continue
		}

		base := processorFieldPlan{
			index:      fullIndex,
			name:       fullName,
			isBytes:    isBytes,
			isSlice:    isStringSlice,
			isMap:      isStringMap,
			ptrIndices: ptrIndices,
		}
		withTag := func(val string) processorFieldPlan {
			plan := base
			plan.tagVal = val
			return plan
		}

		if val, ok := field.Tags[tagReceiveHash]; ok {
			if !HashAlgo(val).Valid() {
				return newConfigError(ErrInvalidTag, val, fullName)
			}
			plans.hashFields = append(plans.hashFields, withTag(val))
		}
		if val, ok := field.Tags[tagLoadDecrypt]; ok {
			if !EncryptAlgo(val).Valid() {
				return newConfigError(ErrInvalidTag, val, fullName)
			}
			plans.decryptFields = append(plans.decryptFields, withTag(val))
		}
		if val, ok := field.Tags[tagStoreEncrypt]; ok {
			if !EncryptAlgo(val).Valid() {
				return newConfigError(ErrInvalidTag, val, fullName)
			}
			plans.encryptFields = append(plans.encryptFields, withTag(val))
		}
		if val, ok := field.Tags[tagSendMask]; ok {
			if !MaskType(val).Valid() {
				return newConfigError(ErrInvalidTag, val, fullName)
			}
			plans.maskFields = append(plans.maskFields, withTag(val))
		}
		if val, ok := field.Tags[tagSendRedact]; ok {
			plans.redactFields = append(plans.redactFields, withTag(val))
		}
	}
	return nil
}

func hasBoundaryTag(tags map[string]string) bool {
	for _, tag := range boundaryTags {
		if _, ok := tags[tag]; ok {
			return true
		}
	}
	return false
}

// scanNestedType returns metadata for a nested struct type, preferring what
// sentinel already knows about it.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}
	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseBoundaryTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}
	return &spec
}

func parseBoundaryTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, name := range boundaryTags {
		if val, ok := tag.Lookup(name); ok {
			tags[name] = val
		}
	}
	return tags
}

// validateCapabilities ensures every tagged field has a registered handler.
// Actions covered by an override interface are not checked.
func (p *Processor[T]) validateCapabilities() error {
	var zero T
	_, hasHashable := any(&zero).(Hashable)
	_, hasDecryptable := any(&zero).(Decryptable)
	_, hasEncryptable := any(&zero).(Encryptable)
	_, hasMaskable := any(&zero).(Maskable)

	if !hasHashable {
		for _, plan := range p.plans.hashFields {
			if _, ok := p.hashers[HashAlgo(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingHasher, plan.tagVal, plan.name)
			}
		}
	}
	if !hasDecryptable {
		for _, plan := range p.plans.decryptFields {
			if _, ok := p.encryptors[EncryptAlgo(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingEncryptor, plan.tagVal, plan.name)
			}
		}
	}
	if !hasEncryptable {
		for _, plan := range p.plans.encryptFields {
			if _, ok := p.encryptors[EncryptAlgo(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingEncryptor, plan.tagVal, plan.name)
			}
		}
	}
	if !hasMaskable {
		for _, plan := range p.plans.maskFields {
			if _, ok := p.maskers[MaskType(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingMasker, plan.tagVal, plan.name)
			}
		}
	}
	return nil
}

// Receive unmarshals data and hashes receive.hash fields.
// Use for data coming from external sources (form submissions, API requests).
func (p *Processor[T]) Receive(ctx context.Context, data []byte) (*T, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	var retErr error
	defer func() {
		emitReceiveComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), len(p.plans.hashFields), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if h, ok := any(&obj).(Hashable); ok {
		retErr = h.Hash(p.hashers)
	} else {
		retErr = p.applyHash(&obj)
	}
	if retErr != nil {
		return nil, retErr
	}
	return &obj, nil
}

// Load unmarshals data read from storage and decrypts load.decrypt fields.
func (p *Processor[T]) Load(ctx context.Context, data []byte) (*T, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	var retErr error
	defer func() {
		emitLoadComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), len(p.plans.decryptFields), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if d, ok := any(&obj).(Decryptable); ok {
		retErr = d.Decrypt(p.encryptors)
	} else {
		retErr = p.applyDecrypt(&obj)
	}
	if retErr != nil {
		return nil, retErr
	}
	return &obj, nil
}

// Store encrypts store.encrypt fields of a copy of obj and marshals it for
// storage. obj itself is not modified. On any encryption failure nothing is
// returned, so plaintext can never be written by mistake.
func (p *Processor[T]) Store(ctx context.Context, obj *T) ([]byte, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	var retErr error
	var retData []byte
	defer func() {
		emitStoreComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), len(p.plans.encryptFields), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	clone := (*obj).Clone()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if e, ok := any(&clone).(Encryptable); ok {
		retErr = e.Encrypt(p.encryptors)
	} else {
		retErr = p.applyEncrypt(&clone)
	}
	if retErr != nil {
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

// Send masks and redacts a copy of obj and marshals it for display.
// obj itself is not modified.
func (p *Processor[T]) Send(ctx context.Context, obj *T) ([]byte, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	var retErr error
	var retData []byte
	defer func() {
		emitSendComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start),
			len(p.plans.maskFields), len(p.plans.redactFields), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	clone := (*obj).Clone()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if m, ok := any(&clone).(Maskable); ok {
		retErr = m.Mask(p.maskers)
	} else {
		retErr = p.applyMask(&clone)
	}
	if retErr != nil {
		return nil, retErr
	}

	if r, ok := any(&clone).(Redactable); ok {
		retErr = r.Redact()
	} else {
		retErr = p.applyRedact(&clone)
	}
	if retErr != nil {
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

func (p *Processor[T]) marshal(v any) ([]byte, error) {
	data, err := p.codec.Marshal(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// valueFunc transforms one string value found at path.
type valueFunc func(path, value string) (string, error)

func (p *Processor[T]) applyHash(obj *T) error {
	return p.apply(obj, p.plans.hashFields, func(plan processorFieldPlan) valueFunc {
		hasher := p.hashers[HashAlgo(plan.tagVal)]
		return func(path, value string) (string, error) {
			hashed, err := hasher.Hash([]byte(value))
			if err != nil {
				return "", newTransformError(ErrHash, "hash", path, err)
			}
			return hashed, nil
		}
	})
}

func (p *Processor[T]) applyDecrypt(obj *T) error {
	return p.apply(obj, p.plans.decryptFields, func(plan processorFieldPlan) valueFunc {
		enc := p.encryptors[EncryptAlgo(plan.tagVal)]
		return func(path, value string) (string, error) {
			if value == "" {
				return value, nil
			}
			plaintext, err := enc.Decrypt(value)
			if err != nil {
				return "", newTransformError(ErrDecrypt, "decrypt", path, err)
			}
			return plaintext, nil
		}
	})
}

func (p *Processor[T]) applyEncrypt(obj *T) error {
	return p.apply(obj, p.plans.encryptFields, func(plan processorFieldPlan) valueFunc {
		enc := p.encryptors[EncryptAlgo(plan.tagVal)]
		return func(path, value string) (string, error) {
			if value == "" {
				return value, nil
			}
			envelope, err := enc.Encrypt(value)
			if err != nil {
				return "", newTransformError(ErrEncrypt, "encrypt", path, err)
			}
			return envelope, nil
		}
	})
}

func (p *Processor[T]) applyMask(obj *T) error {
	return p.apply(obj, p.plans.maskFields, func(plan processorFieldPlan) valueFunc {
		masker := p.maskers[MaskType(plan.tagVal)]
		return func(_, value string) (string, error) {
			return masker.Mask(value), nil
		}
	})
}

func (p *Processor[T]) applyRedact(obj *T) error {
	return p.apply(obj, p.plans.redactFields, func(plan processorFieldPlan) valueFunc {
		return func(_, _ string) (string, error) {
			return plan.tagVal, nil
		}
	})
}

// apply runs the valueFunc built for each plan over every string the field
// holds: the scalar itself, each slice element, or each map value.
func (p *Processor[T]) apply(obj *T, plans []processorFieldPlan, build func(processorFieldPlan) valueFunc) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range plans {
		field, ok := p.getField(rv, plan)
		if !ok {
			continue
		}
		fn := build(plan)

		switch {
		case plan.isSlice:
			for i := 0; i < field.Len(); i++ {
				elem := field.Index(i)
				if !elem.CanSet() {
					continue
				}
				out, err := fn(fmt.Sprintf("%s[%d]", plan.name, i), elem.String())
				if err != nil {
					return err
				}
				elem.SetString(out)
			}

		case plan.isMap:
			elemType := field.Type().Elem()
			iter := field.MapRange()
			for iter.Next() {
				k, v := iter.Key(), iter.Value()
				out, err := fn(fmt.Sprintf("%s[%v]", plan.name, k.Interface()), v.String())
				if err != nil {
					return err
				}
				field.SetMapIndex(k, reflect.ValueOf(out).Convert(elemType))
			}

		case plan.isBytes:
			if !field.CanSet() {
				continue
			}
			out, err := fn(plan.name, string(field.Bytes()))
			if err != nil {
				return err
			}
			field.SetBytes([]byte(out))

		default:
			if !field.CanSet() {
				continue
			}
			out, err := fn(plan.name, field.String())
			if err != nil {
				return err
			}
			field.SetString(out)
		}
	}
	return nil
}

// getField navigates a field path, dereferencing pointers as needed.
// A nil pointer along the path means there is nothing to transform.
func (p *Processor[T]) getField(rv reflect.Value, plan processorFieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	current := rv
	for i, idx := range plan.index {
		current = current.Field(idx)
		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}
	return current, true
}
