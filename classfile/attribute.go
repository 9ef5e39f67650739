package classfile

import (
	"encoding/binary"
)

type AttributeInfo struct {
	NameIndex uint16
	Info      []byte
	Parsed    interface{}
}

type CodeAttribute struct {
	MaxStack       uint16
	MaxLocals      uint16
	Code           []byte
	ExceptionTable []ExceptionTableEntry
	Attributes     []AttributeInfo
}

type ExceptionTableEntry struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType uint16
}

type LineNumberTableAttribute struct {
	LineNumberTable []LineNumberEntry
}

type LineNumberEntry struct {
	StartPC    uint16
	LineNumber uint16
}

type LocalVariableTableAttribute struct {
	LocalVariableTable []LocalVariableEntry
}

type LocalVariableEntry struct {
	StartPC         uint16
	Length          uint16
	NameIndex       uint16
	DescriptorIndex uint16
	Index           uint16
}

type SourceFileAttribute struct {
	SourceFileIndex uint16
}

type ConstantValueAttribute struct {
	ConstantValueIndex uint16
}

type ExceptionsAttribute struct {
	ExceptionIndexTable []uint16
}

type InnerClassesAttribute struct {
	Classes []InnerClassEntry
}

type InnerClassEntry struct {
	InnerClassInfoIndex   uint16
	OuterClassInfoIndex   uint16
	InnerNameIndex        uint16
	InnerClassAccessFlags AccessFlags
}

type SignatureAttribute struct {
	SignatureIndex uint16
}

type BootstrapMethodsAttribute struct {
	BootstrapMethods []BootstrapMethod
}

type BootstrapMethod struct {
	BootstrapMethodRef uint16
	BootstrapArguments []uint16
}

func (a *AttributeInfo) AsCode() *CodeAttribute {
	if a.Parsed != nil {
		if code, ok := a.Parsed.(*CodeAttribute); ok {
			return code
		}
	}
	return nil
}

func (a *AttributeInfo) AsLineNumberTable() *LineNumberTableAttribute {
	if a.Parsed != nil {
		if lnt, ok := a.Parsed.(*LineNumberTableAttribute); ok {
			return lnt
		}
	}
	return nil
}

func (a *AttributeInfo) AsLocalVariableTable() *LocalVariableTableAttribute {
	if a.Parsed != nil {
		if lvt, ok := a.Parsed.(*LocalVariableTableAttribute); ok {
			return lvt
		}
	}
	return nil
}

func (a *AttributeInfo) AsSourceFile() *SourceFileAttribute {
	if a.Parsed != nil {
		if sf, ok := a.Parsed.(*SourceFileAttribute); ok {
			return sf
		}
	}
	return nil
}

func (a *AttributeInfo) AsConstantValue() *ConstantValueAttribute {
	if a.Parsed != nil {
		if cv, ok := a.Parsed.(*ConstantValueAttribute); ok {
			return cv
		}
	}
	return nil
}

func (a *AttributeInfo) AsExceptions() *ExceptionsAttribute {
	if a.Parsed != nil {
		if ex, ok := a.Parsed.(*ExceptionsAttribute); ok {
			return ex
		}
	}
	return nil
}

func (a *AttributeInfo) AsInnerClasses() *InnerClassesAttribute {
	if a.Parsed != nil {
		if ic, ok := a.Parsed.(*InnerClassesAttribute); ok {
			return ic
		}
	}
	return nil
}

func (a *AttributeInfo) AsSignature() *SignatureAttribute {
	if a.Parsed != nil {
		if sig, ok := a.Parsed.(*SignatureAttribute); ok {
			return sig
		}
	}
	return nil
}

func (a *AttributeInfo) AsBootstrapMethods() *BootstrapMethodsAttribute {
	if a.Parsed != nil {
		if bm, ok := a.Parsed.(*BootstrapMethodsAttribute); ok {
			return bm
		}
	}
	return nil
}

func parseCodeAttribute(info []byte, cp ConstantPool) *CodeAttribute {
	if len(info) < 8 {
		return nil
	}

	code := &CodeAttribute{
		MaxStack:  binary.BigEndian.Uint16(info[0:2]),
		MaxLocals: binary.BigEndian.Uint16(info[2:4]),
	}

	codeLength := binary.BigEndian.Uint32(info[4:8])
	if len(info) < 8+int(codeLength) {
		return nil
	}
	code.Code = info[8 : 8+codeLength]

	offset := 8 + int(codeLength)
	if len(info) < offset+2 {
		return nil
	}

	exceptionTableLength := binary.BigEndian.Uint16(info[offset : offset+2])
	offset += 2

	code.ExceptionTable = make([]ExceptionTableEntry, exceptionTableLength)
	for i := uint16(0); i < exceptionTableLength; i++ {
		if len(info) < offset+8 {
			return nil
		}
		code.ExceptionTable[i] = ExceptionTableEntry{
			StartPC:   binary.BigEndian.Uint16(info[offset : offset+2]),
			EndPC:     binary.BigEndian.Uint16(info[offset+2 : offset+4]),
			HandlerPC: binary.BigEndian.Uint16(info[offset+4 : offset+6]),
			CatchType: binary.BigEndian.Uint16(info[offset+6 : offset+8]),
		}
		offset += 8
	}

	if len(info) < offset+2 {
		return nil
	}
	attributesCount := binary.BigEndian.Uint16(info[offset : offset+2])
	offset += 2

	code.Attributes = make([]AttributeInfo, 0, attributesCount)
	for i := uint16(0); i < attributesCount; i++ {
		if len(info) < offset+6 {
			return nil
		}
		nameIndex := binary.BigEndian.Uint16(info[offset : offset+2])
		attrLength := binary.BigEndian.Uint32(info[offset+2 : offset+6])
		offset += 6

		if len(info) < offset+int(attrLength) {
			return nil
		}
		attrInfo := info[offset : offset+int(attrLength)]
		offset += int(attrLength)

		attr := AttributeInfo{
			NameIndex: nameIndex,
			Info:      attrInfo,
		}

		attrName := cp.GetUtf8(nameIndex)
		switch attrName {
		case "LineNumberTable":
			attr.Parsed = parseLineNumberTableAttribute(attrInfo)
		case "LocalVariableTable":
			attr.Parsed = parseLocalVariableTableAttribute(attrInfo)
		}

		code.Attributes = append(code.Attributes, attr)
	}

	return code
}

func parseLineNumberTableAttribute(info []byte) *LineNumberTableAttribute {
	if len(info) < 2 {
		return nil
	}

	count := binary.BigEndian.Uint16(info[0:2])
	if len(info) < 2+int(count)*4 {
		return nil
	}

	lnt := &LineNumberTableAttribute{
		LineNumberTable: make([]LineNumberEntry, count),
	}

	offset := 2
	for i := uint16(0); i < count; i++ {
		lnt.LineNumberTable[i] = LineNumberEntry{
			StartPC:    binary.BigEndian.Uint16(info[offset : offset+2]),
			LineNumber: binary.BigEndian.Uint16(info[offset+2 : offset+4]),
		}
		offset += 4
	}

	return lnt
}

func parseLocalVariableTableAttribute(info []byte) *LocalVariableTableAttribute {
	if len(info) < 2 {
		return nil
	}

	count := binary.BigEndian.Uint16(info[0:2])
	if len(info) < 2+int(count)*10 {
		return nil
	}

	lvt := &LocalVariableTableAttribute{
		LocalVariableTable: make([]LocalVariableEntry, count),
	}

	offset := 2
	for i := uint16(0); i < count; i++ {
		lvt.LocalVariableTable[i] = LocalVariableEntry{
			StartPC:         binary.BigEndian.Uint16(info[offset : offset+2]),
			Length:          binary.BigEndian.Uint16(info[offset+2 : offset+4]),
			NameIndex:       binary.BigEndian.Uint16(info[offset+4 : offset+6]),
			DescriptorIndex: binary.BigEndian.Uint16(info[offset+6 : offset+8]),
			Index:           binary.BigEndian.Uint16(info[offset+8 : offset+10]),
		}
		offset += 10
	}

	return lvt
}

func parseSourceFileAttribute(info []byte) *SourceFileAttribute {
	if len(info) < 2 {
		return nil
	}
	return &SourceFileAttribute{
		SourceFileIndex: binary.BigEndian.Uint16(info[0:2]),
	}
}

func parseConstantValueAttribute(info []byte) *ConstantValueAttribute {
	if len(info) < 2 {
		return nil
	}
	return &ConstantValueAttribute{
		ConstantValueIndex: binary.BigEndian.Uint16(info[0:2]),
	}
}

func parseExceptionsAttribute(info []byte) *ExceptionsAttribute {
	if len(info) < 2 {
		return nil
	}
	count := binary.BigEndian.Uint16(info[0:2])
	if len(info) < 2+int(count)*2 {
		return nil
	}

	ex := &ExceptionsAttribute{
		ExceptionIndexTable: make([]uint16, count),
	}

	offset := 2
	for i := uint16(0); i < count; i++ {
		ex.ExceptionIndexTable[i] = binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
	}

	return ex
}

func parseInnerClassesAttribute(info []byte) *InnerClassesAttribute {
	if len(info) < 2 {
		return nil
	}
	count := binary.BigEndian.Uint16(info[0:2])
	if len(info) < 2+int(count)*8 {
		return nil
	}

	ic := &InnerClassesAttribute{
		Classes: make([]InnerClassEntry, count),
	}

	offset := 2
	for i := uint16(0); i < count; i++ {
		ic.Classes[i] = InnerClassEntry{
			InnerClassInfoIndex:   binary.BigEndian.Uint16(info[offset : offset+2]),
			OuterClassInfoIndex:   binary.BigEndian.Uint16(info[offset+2 : offset+4]),
			InnerNameIndex:        binary.BigEndian.Uint16(info[offset+4 : offset+6]),
			InnerClassAccessFlags: AccessFlags(binary.BigEndian.Uint16(info[offset+6 : offset+8])),
		}
		offset += 8
	}

	return ic
}

func parseSignatureAttribute(info []byte) *SignatureAttribute {
	if len(info) < 2 {
		return nil
	}
	return &SignatureAttribute{
		SignatureIndex: binary.BigEndian.Uint16(info[0:2]),
	}
}

type EnclosingMethodAttribute struct {
	ClassIndex  uint16
	MethodIndex uint16
}

type LocalVariableTypeTableAttribute struct {
	LocalVariableTypeTable []LocalVariableTypeEntry
}

type LocalVariableTypeEntry struct {
	StartPC        uint16
	Length         uint16
	NameIndex      uint16
	SignatureIndex uint16
	Index          uint16
}

type MethodParametersAttribute struct {
	Parameters []MethodParameterEntry
}

type MethodParameterEntry struct {
	NameIndex   uint16
	AccessFlags AccessFlags
}

type NestHostAttribute struct {
	HostClassIndex uint16
}

type NestMembersAttribute struct {
	Classes []uint16
}

type RecordAttribute struct {
	Components []RecordComponentInfo
}

type RecordComponentInfo struct {
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

type PermittedSubclassesAttribute struct {
	Classes []uint16
}

type StackMapTableAttribute struct {
	Raw []byte
}

type Annotation struct {
	TypeIndex         uint16
	ElementValuePairs []ElementValuePair
}

type ElementValuePair struct {
	ElementNameIndex uint16
	Value            ElementValue
}

type ElementValue struct {
	Tag   byte
	Value interface{}
}

type EnumConstValue struct {
	TypeNameIndex  uint16
	ConstNameIndex uint16
}

type ArrayValue struct {
	Values []ElementValue
}

type RuntimeVisibleAnnotationsAttribute struct {
	Annotations []Annotation
}

type RuntimeInvisibleAnnotationsAttribute struct {
	Annotations []Annotation
}

type RuntimeVisibleParameterAnnotationsAttribute struct {
	ParameterAnnotations [][]Annotation
}

type RuntimeInvisibleParameterAnnotationsAttribute struct {
	ParameterAnnotations [][]Annotation
}

type RuntimeVisibleTypeAnnotationsAttribute struct {
	Raw []byte
}

type RuntimeInvisibleTypeAnnotationsAttribute struct {
	Raw []byte
}

type AnnotationDefaultAttribute struct {
	Value ElementValue
}

type ModuleAttribute struct {
	ModuleNameIndex    uint16
	ModuleFlags        uint16
	ModuleVersionIndex uint16
	Requires           []ModuleRequiresEntry
	Exports            []ModuleExportsEntry
	Opens              []ModuleOpensEntry
	Uses               []uint16
	Provides           []ModuleProvidesEntry
}

type ModuleRequiresEntry struct {
	RequiresIndex        uint16
	RequiresFlags        uint16
	RequiresVersionIndex uint16
}

type ModuleExportsEntry struct {
	ExportsIndex uint16
	ExportsFlags uint16
	ExportsTo    []uint16
}

type ModuleOpensEntry struct {
	OpensIndex uint16
	OpensFlags uint16
	OpensTo    []uint16
}

type ModuleProvidesEntry struct {
	ProvidesIndex     uint16
	ProvidesWithIndex []uint16
}

type ModulePackagesAttribute struct {
	Packages []uint16
}

type ModuleMainClassAttribute struct {
	MainClassIndex uint16
}

func (a *AttributeInfo) AsEnclosingMethod() *EnclosingMethodAttribute {
	if em, ok := a.Parsed.(*EnclosingMethodAttribute); ok {
		return em
	}
	return nil
}

func (a *AttributeInfo) AsLocalVariableTypeTable() *LocalVariableTypeTableAttribute {
	if lvtt, ok := a.Parsed.(*LocalVariableTypeTableAttribute); ok {
		return lvtt
	}
	return nil
}

func (a *AttributeInfo) AsMethodParameters() *MethodParametersAttribute {
	if mp, ok := a.Parsed.(*MethodParametersAttribute); ok {
		return mp
	}
	return nil
}

func (a *AttributeInfo) AsNestHost() *NestHostAttribute {
	if nh, ok := a.Parsed.(*NestHostAttribute); ok {
		return nh
	}
	return nil
}

func (a *AttributeInfo) AsNestMembers() *NestMembersAttribute {
	if nm, ok := a.Parsed.(*NestMembersAttribute); ok {
		return nm
	}
	return nil
}

func (a *AttributeInfo) AsRecord() *RecordAttribute {
	if rec, ok := a.Parsed.(*RecordAttribute); ok {
		return rec
	}
	return nil
}

func (a *AttributeInfo) AsPermittedSubclasses() *PermittedSubclassesAttribute {
	if ps, ok := a.Parsed.(*PermittedSubclassesAttribute); ok {
		return ps
	}
	return nil
}

func (a *AttributeInfo) AsRuntimeVisibleAnnotations() *RuntimeVisibleAnnotationsAttribute {
	if rva, ok := a.Parsed.(*RuntimeVisibleAnnotationsAttribute); ok {
		return rva
	}
	return nil
}

func (a *AttributeInfo) AsRuntimeInvisibleAnnotations() *RuntimeInvisibleAnnotationsAttribute {
	if ria, ok := a.Parsed.(*RuntimeInvisibleAnnotationsAttribute); ok {
		return ria
	}
	return nil
}

func (a *AttributeInfo) AsRuntimeVisibleParameterAnnotations() *RuntimeVisibleParameterAnnotationsAttribute {
	if rvpa, ok := a.Parsed.(*RuntimeVisibleParameterAnnotationsAttribute); ok {
		return rvpa
	}
	return nil
}

func (a *AttributeInfo) AsRuntimeInvisibleParameterAnnotations() *RuntimeInvisibleParameterAnnotationsAttribute {
	if ripa, ok := a.Parsed.(*RuntimeInvisibleParameterAnnotationsAttribute); ok {
		return ripa
	}
	return nil
}

func (a *AttributeInfo) AsAnnotationDefault() *AnnotationDefaultAttribute {
	if ad, ok := a.Parsed.(*AnnotationDefaultAttribute); ok {
		return ad
	}
	return nil
}

func (a *AttributeInfo) AsModule() *ModuleAttribute {
	if mod, ok := a.Parsed.(*ModuleAttribute); ok {
		return mod
	}
	return nil
}

func (a *AttributeInfo) AsModulePackages() *ModulePackagesAttribute {
	if mp, ok := a.Parsed.(*ModulePackagesAttribute); ok {
		return mp
	}
	return nil
}

func (a *AttributeInfo) AsModuleMainClass() *ModuleMainClassAttribute {
	if mmc, ok := a.Parsed.(*ModuleMainClassAttribute); ok {
		return mmc
	}
	return nil
}

func parseEnclosingMethodAttribute(info []byte) *EnclosingMethodAttribute {
	if len(info) < 4 {
		return nil
	}
	return &EnclosingMethodAttribute{
		ClassIndex:  binary.BigEndian.Uint16(info[0:2]),
		MethodIndex: binary.BigEndian.Uint16(info[2:4]),
	}
}

func parseSyntheticAttribute(info []byte) struct{} {
	return struct{}{}
}

func parseDeprecatedAttribute(info []byte) struct{} {
	return struct{}{}
}

func parseSourceDebugExtensionAttribute(info []byte) string {
	return string(info)
}

func parseLocalVariableTypeTableAttribute(info []byte) *LocalVariableTypeTableAttribute {
	if len(info) < 2 {
		return nil
	}
	count := binary.BigEndian.Uint16(info[0:2])
	if len(info) < 2+int(count)*10 {
		return nil
	}

	lvtt := &LocalVariableTypeTableAttribute{
		LocalVariableTypeTable: make([]LocalVariableTypeEntry, count),
	}

	offset := 2
	for i := uint16(0); i < count; i++ {
		lvtt.LocalVariableTypeTable[i] = LocalVariableTypeEntry{
			StartPC:        binary.BigEndian.Uint16(info[offset : offset+2]),
			Length:         binary.BigEndian.Uint16(info[offset+2 : offset+4]),
			NameIndex:      binary.BigEndian.Uint16(info[offset+4 : offset+6]),
			SignatureIndex: binary.BigEndian.Uint16(info[offset+6 : offset+8]),
			Index:          binary.BigEndian.Uint16(info[offset+8 : offset+10]),
		}
		offset += 10
	}

	return lvtt
}

func parseMethodParametersAttribute(info []byte) *MethodParametersAttribute {
	if len(info) < 1 {
		return nil
	}
	count := info[0]
	if len(info) < 1+int(count)*4 {
		return nil
	}

	mp := &MethodParametersAttribute{
		Parameters: make([]MethodParameterEntry, count),
	}

	offset := 1
	for i := byte(0); i < count; i++ {
		mp.Parameters[i] = MethodParameterEntry{
			NameIndex:   binary.BigEndian.Uint16(info[offset : offset+2]),
			AccessFlags: AccessFlags(binary.BigEndian.Uint16(info[offset+2 : offset+4])),
		}
		offset += 4
	}

	return mp
}

func parseNestHostAttribute(info []byte) *NestHostAttribute {
	if len(info) < 2 {
		return nil
	}
	return &NestHostAttribute{HostClassIndex: binary.BigEndian.Uint16(info[0:2])}
}

func parseNestMembersAttribute(info []byte) *NestMembersAttribute {
	if len(info) < 2 {
		return nil
	}
	count := binary.BigEndian.Uint16(info[0:2])
	if len(info) < 2+int(count)*2 {
		return nil
	}

	nm := &NestMembersAttribute{Classes: make([]uint16, count)}
	offset := 2
	for i := uint16(0); i < count; i++ {
		nm.Classes[i] = binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
	}
	return nm
}

func parsePermittedSubclassesAttribute(info []byte) *PermittedSubclassesAttribute {
	if len(info) < 2 {
		return nil
	}
	count := binary.BigEndian.Uint16(info[0:2])
	if len(info) < 2+int(count)*2 {
		return nil
	}

	ps := &PermittedSubclassesAttribute{Classes: make([]uint16, count)}
	offset := 2
	for i := uint16(0); i < count; i++ {
		ps.Classes[i] = binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
	}
	return ps
}

func parseRecordAttribute(info []byte, cp ConstantPool) *RecordAttribute {
	if len(info) < 2 {
		return nil
	}
	count := binary.BigEndian.Uint16(info[0:2])

	rec := &RecordAttribute{Components: make([]RecordComponentInfo, 0, count)}
	offset := 2
	for i := uint16(0); i < count; i++ {
		if len(info) < offset+6 {
			return nil
		}
		comp := RecordComponentInfo{
			NameIndex:       binary.BigEndian.Uint16(info[offset : offset+2]),
			DescriptorIndex: binary.BigEndian.Uint16(info[offset+2 : offset+4]),
		}
		attrCount := binary.BigEndian.Uint16(info[offset+4 : offset+6])
		offset += 6

		comp.Attributes = make([]AttributeInfo, 0, attrCount)
		for j := uint16(0); j < attrCount; j++ {
			if len(info) < offset+6 {
				return nil
			}
			nameIndex := binary.BigEndian.Uint16(info[offset : offset+2])
			attrLength := binary.BigEndian.Uint32(info[offset+2 : offset+6])
			offset += 6
			if len(info) < offset+int(attrLength) {
				return nil
			}
			attrInfo := info[offset : offset+int(attrLength)]
			offset += int(attrLength)

			attr := AttributeInfo{NameIndex: nameIndex, Info: attrInfo}
			switch cp.GetUtf8(nameIndex) {
			case "Signature":
				attr.Parsed = parseSignatureAttribute(attrInfo)
			case "RuntimeVisibleAnnotations":
				attr.Parsed = parseRuntimeVisibleAnnotationsAttribute(attrInfo)
			case "RuntimeInvisibleAnnotations":
				attr.Parsed = parseRuntimeInvisibleAnnotationsAttribute(attrInfo)
			}
			comp.Attributes = append(comp.Attributes, attr)
		}

		rec.Components = append(rec.Components, comp)
	}

	return rec
}

func parseStackMapTableAttribute(info []byte) *StackMapTableAttribute {
	return &StackMapTableAttribute{Raw: info}
}

func parseElementValue(info []byte, offset int) (ElementValue, int) {
	if offset >= len(info) {
		return ElementValue{}, offset
	}
	tag := info[offset]
	offset++

	switch tag {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 's':
		idx := binary.BigEndian.Uint16(info[offset : offset+2])
		return ElementValue{Tag: tag, Value: idx}, offset + 2
	case 'e':
		typeIdx := binary.BigEndian.Uint16(info[offset : offset+2])
		constIdx := binary.BigEndian.Uint16(info[offset+2 : offset+4])
		return ElementValue{Tag: tag, Value: EnumConstValue{TypeNameIndex: typeIdx, ConstNameIndex: constIdx}}, offset + 4
	case 'c':
		idx := binary.BigEndian.Uint16(info[offset : offset+2])
		return ElementValue{Tag: tag, Value: idx}, offset + 2
	case '@':
		ann, next := parseAnnotationAt(info, offset)
		return ElementValue{Tag: tag, Value: ann}, next
	case '[':
		count := binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
		values := make([]ElementValue, count)
		for i := uint16(0); i < count; i++ {
			var ev ElementValue
			ev, offset = parseElementValue(info, offset)
			values[i] = ev
		}
		return ElementValue{Tag: tag, Value: ArrayValue{Values: values}}, offset
	}

	return ElementValue{Tag: tag}, offset
}

func parseAnnotationAt(info []byte, offset int) (Annotation, int) {
	if len(info) < offset+4 {
		return Annotation{}, offset
	}
	typeIndex := binary.BigEndian.Uint16(info[offset : offset+2])
	pairCount := binary.BigEndian.Uint16(info[offset+2 : offset+4])
	offset += 4

	ann := Annotation{TypeIndex: typeIndex, ElementValuePairs: make([]ElementValuePair, pairCount)}
	for i := uint16(0); i < pairCount; i++ {
		nameIndex := binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
		var value ElementValue
		value, offset = parseElementValue(info, offset)
		ann.ElementValuePairs[i] = ElementValuePair{ElementNameIndex: nameIndex, Value: value}
	}

	return ann, offset
}

func parseAnnotations(info []byte) []Annotation {
	if len(info) < 2 {
		return nil
	}
	count := binary.BigEndian.Uint16(info[0:2])
	anns := make([]Annotation, count)
	offset := 2
	for i := uint16(0); i < count; i++ {
		anns[i], offset = parseAnnotationAt(info, offset)
	}
	return anns
}

func parseRuntimeVisibleAnnotationsAttribute(info []byte) *RuntimeVisibleAnnotationsAttribute {
	return &RuntimeVisibleAnnotationsAttribute{Annotations: parseAnnotations(info)}
}

func parseRuntimeInvisibleAnnotationsAttribute(info []byte) *RuntimeInvisibleAnnotationsAttribute {
	return &RuntimeInvisibleAnnotationsAttribute{Annotations: parseAnnotations(info)}
}

func parseParameterAnnotations(info []byte) [][]Annotation {
	if len(info) < 1 {
		return nil
	}
	count := info[0]
	result := make([][]Annotation, count)
	offset := 1
	for i := byte(0); i < count; i++ {
		if len(info) < offset+2 {
			break
		}
		annCount := binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
		anns := make([]Annotation, annCount)
		for j := uint16(0); j < annCount; j++ {
			anns[j], offset = parseAnnotationAt(info, offset)
		}
		result[i] = anns
	}
	return result
}

func parseRuntimeVisibleParameterAnnotationsAttribute(info []byte) *RuntimeVisibleParameterAnnotationsAttribute {
	return &RuntimeVisibleParameterAnnotationsAttribute{ParameterAnnotations: parseParameterAnnotations(info)}
}

func parseRuntimeInvisibleParameterAnnotationsAttribute(info []byte) *RuntimeInvisibleParameterAnnotationsAttribute {
	return &RuntimeInvisibleParameterAnnotationsAttribute{ParameterAnnotations: parseParameterAnnotations(info)}
}

func parseRuntimeVisibleTypeAnnotationsAttribute(info []byte) *RuntimeVisibleTypeAnnotationsAttribute {
	return &RuntimeVisibleTypeAnnotationsAttribute{Raw: info}
}

func parseRuntimeInvisibleTypeAnnotationsAttribute(info []byte) *RuntimeInvisibleTypeAnnotationsAttribute {
	return &RuntimeInvisibleTypeAnnotationsAttribute{Raw: info}
}

func parseAnnotationDefaultAttribute(info []byte) *AnnotationDefaultAttribute {
	value, _ := parseElementValue(info, 0)
	return &AnnotationDefaultAttribute{Value: value}
}

func parseModuleAttribute(info []byte) *ModuleAttribute {
	if len(info) < 6 {
		return nil
	}
	mod := &ModuleAttribute{
		ModuleNameIndex: binary.BigEndian.Uint16(info[0:2]),
		ModuleFlags:     binary.BigEndian.Uint16(info[2:4]),
	}
	offset := 4
	mod.ModuleVersionIndex = binary.BigEndian.Uint16(info[offset : offset+2])
	offset += 2

	requiresCount := binary.BigEndian.Uint16(info[offset : offset+2])
	offset += 2
	mod.Requires = make([]ModuleRequiresEntry, requiresCount)
	for i := uint16(0); i < requiresCount; i++ {
		mod.Requires[i] = ModuleRequiresEntry{
			RequiresIndex:        binary.BigEndian.Uint16(info[offset : offset+2]),
			RequiresFlags:        binary.BigEndian.Uint16(info[offset+2 : offset+4]),
			RequiresVersionIndex: binary.BigEndian.Uint16(info[offset+4 : offset+6]),
		}
		offset += 6
	}

	exportsCount := binary.BigEndian.Uint16(info[offset : offset+2])
	offset += 2
	mod.Exports = make([]ModuleExportsEntry, exportsCount)
	for i := uint16(0); i < exportsCount; i++ {
		exp := ModuleExportsEntry{
			ExportsIndex: binary.BigEndian.Uint16(info[offset : offset+2]),
			ExportsFlags: binary.BigEndian.Uint16(info[offset+2 : offset+4]),
		}
		offset += 4
		toCount := binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
		exp.ExportsTo = make([]uint16, toCount)
		for j := uint16(0); j < toCount; j++ {
			exp.ExportsTo[j] = binary.BigEndian.Uint16(info[offset : offset+2])
			offset += 2
		}
		mod.Exports[i] = exp
	}

	opensCount := binary.BigEndian.Uint16(info[offset : offset+2])
	offset += 2
	mod.Opens = make([]ModuleOpensEntry, opensCount)
	for i := uint16(0); i < opensCount; i++ {
		opens := ModuleOpensEntry{
			OpensIndex: binary.BigEndian.Uint16(info[offset : offset+2]),
			OpensFlags: binary.BigEndian.Uint16(info[offset+2 : offset+4]),
		}
		offset += 4
		toCount := binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
		opens.OpensTo = make([]uint16, toCount)
		for j := uint16(0); j < toCount; j++ {
			opens.OpensTo[j] = binary.BigEndian.Uint16(info[offset : offset+2])
			offset += 2
		}
		mod.Opens[i] = opens
	}

	usesCount := binary.BigEndian.Uint16(info[offset : offset+2])
	offset += 2
	mod.Uses = make([]uint16, usesCount)
	for i := uint16(0); i < usesCount; i++ {
		mod.Uses[i] = binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
	}

	providesCount := binary.BigEndian.Uint16(info[offset : offset+2])
	offset += 2
	mod.Provides = make([]ModuleProvidesEntry, providesCount)
	for i := uint16(0); i < providesCount; i++ {
		prov := ModuleProvidesEntry{
			ProvidesIndex: binary.BigEndian.Uint16(info[offset : offset+2]),
		}
		offset += 2
		withCount := binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
		prov.ProvidesWithIndex = make([]uint16, withCount)
		for j := uint16(0); j < withCount; j++ {
			prov.ProvidesWithIndex[j] = binary.BigEndian.Uint16(info[offset : offset+2])
			offset += 2
		}
		mod.Provides[i] = prov
	}

	return mod
}

func parseModulePackagesAttribute(info []byte) *ModulePackagesAttribute {
	if len(info) < 2 {
		return nil
	}
	count := binary.BigEndian.Uint16(info[0:2])
	if len(info) < 2+int(count)*2 {
		return nil
	}
	mp := &ModulePackagesAttribute{Packages: make([]uint16, count)}
	offset := 2
	for i := uint16(0); i < count; i++ {
		mp.Packages[i] = binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
	}
	return mp
}

func parseModuleMainClassAttribute(info []byte) *ModuleMainClassAttribute {
	if len(info) < 2 {
		return nil
	}
	return &ModuleMainClassAttribute{MainClassIndex: binary.BigEndian.Uint16(info[0:2])}
}

func parseBootstrapMethodsAttribute(info []byte) *BootstrapMethodsAttribute {
	if len(info) < 2 {
		return nil
	}
	count := binary.BigEndian.Uint16(info[0:2])

	bm := &BootstrapMethodsAttribute{
		BootstrapMethods: make([]BootstrapMethod, 0, count),
	}

	offset := 2
	for i := uint16(0); i < count; i++ {
		if len(info) < offset+4 {
			return nil
		}
		methodRef := binary.BigEndian.Uint16(info[offset : offset+2])
		numArgs := binary.BigEndian.Uint16(info[offset+2 : offset+4])
		offset += 4

		if len(info) < offset+int(numArgs)*2 {
			return nil
		}
		args := make([]uint16, numArgs)
		for j := uint16(0); j < numArgs; j++ {
			args[j] = binary.BigEndian.Uint16(info[offset : offset+2])
			offset += 2
		}

		bm.BootstrapMethods = append(bm.BootstrapMethods, BootstrapMethod{
			BootstrapMethodRef: methodRef,
			BootstrapArguments: args,
		})
	}

	return bm
}
